package slicer

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/fruit-slicer/internal/assets"
	"github.com/vovakirdan/fruit-slicer/internal/config"
	"github.com/vovakirdan/fruit-slicer/internal/core"
)

// EndReason tells why a round ended.
type EndReason uint8

const (
	EndNone EndReason = iota
	EndTimeout
	EndBomb
)

// String returns a human-readable name for the reason.
func (r EndReason) String() string {
	switch r {
	case EndTimeout:
		return "timeout"
	case EndBomb:
		return "bomb"
	default:
		return "none"
	}
}

// Session is one round of play. It owns every live object, runs the spawn
// policy and physics at a fixed step, and renders, cuts and checks the
// round clock once per frame.
//
// A Session is not safe for concurrent use; the platform drives it from a
// single goroutine.
type Session struct {
	cfg        config.SlicerConfig
	policy     ScorePolicy
	rng        *rand.Rand
	spawner    *Spawner
	difficulty *config.DifficultyManager
	clock      func() time.Time
	log        *log.Logger

	sprites [kindCount]*assets.Sprite
	halves  [kindCount][2]*assets.Sprite

	live  [kindCount][]*Throwable
	knife *Knife

	points  float64
	combo   int
	comboAt float64
	elapsed float64

	bombProbability float64
	multiplier      float64
	startedAt       time.Time

	// Bomb freeze.
	paused    bool
	pausedAt  float64
	bombAt    time.Time
	explosion *Explosion

	// Player pause; its duration does not count against the round.
	userPaused   bool
	userPausedAt time.Time
	pausedTotal  time.Duration

	highlight *gween.Tween

	ended  bool
	reason EndReason
}

// NewSession creates a session and loads every sprite it may draw. A
// missing sprite is an error here rather than a blank object later.
func NewSession(cfg config.SlicerConfig, images ImageLoader, seed int64) (*Session, error) {
	policy, err := ScorePolicyByName(cfg.Scoring.Policy)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	s := &Session{
		cfg:        cfg,
		policy:     policy,
		rng:        rng,
		spawner:    NewSpawner(rng, cfg),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		clock:      time.Now,
		log:        log.New(io.Discard),
		knife:      NewKnife(cfg.Knife.TailLen),
		highlight:  gween.New(1, 0, float32(max(cfg.Scoring.ComboHighlight, minPhase)), ease.OutQuad),
	}

	for k := Kind(0); k < kindCount; k++ {
		info := kinds[k]
		if info.asset == "" {
			continue
		}
		if s.sprites[k], err = images.LoadImage(info.asset); err != nil {
			return nil, fmt.Errorf("slicer: cannot load %s: %w", info.name, err)
		}
		if info.reaction != reactSplit {
			continue
		}
		for i, suffix := range [2]string{assets.LeftSuffix, assets.RightSuffix} {
			if s.halves[k][i], err = images.LoadImage(info.asset + suffix); err != nil {
				return nil, fmt.Errorf("slicer: cannot load %s half: %w", info.name, err)
			}
		}
	}

	return s, nil
}

// SetClock replaces the wall clock used for the round timer and the bomb
// sequence.
func (s *Session) SetClock(clock func() time.Time) {
	s.clock = clock
}

// SetLogger sets the logger for round events.
func (s *Session) SetLogger(l *log.Logger) {
	if l != nil {
		s.log = l
	}
}

// Seed restarts the spawn sequence from seed.
func (s *Session) Seed(seed int64) {
	s.rng.Seed(seed)
}

// Start begins a new round: every collection is cleared and the score,
// combo, pause and timers are reset.
func (s *Session) Start(bombProbability, multiplier float64) {
	for k := range s.live {
		s.live[k] = s.live[k][:0]
	}
	s.knife.Reset()

	s.points = 0
	s.combo = 0
	s.comboAt = 0
	s.elapsed = 0

	s.bombProbability = core.ClampF(bombProbability, 0, 1)
	s.multiplier = multiplier
	s.startedAt = s.clock()

	s.paused = false
	s.pausedAt = 0
	s.explosion = nil
	s.userPaused = false
	s.pausedTotal = 0

	s.ended = false
	s.reason = EndNone

	s.log.Info("round started", "bomb_probability", s.bombProbability, "multiplier", s.multiplier)
}

// PhysicsTick advances the simulation by one fixed step of dt seconds. It
// does nothing while the round is frozen or over.
func (s *Session) PhysicsTick(_, dt float64) {
	if s.frozen() {
		return
	}

	gravity := core.V(0, s.cfg.Physics.Gravity)
	for k := range s.live {
		for _, t := range s.live[k] {
			if !t.removed {
				t.physicsTick(dt, gravity)
			}
		}
	}

	if s.combo > 0 && s.elapsed-s.comboAt > s.cfg.Scoring.ComboTimeout {
		s.combo = 0
	}

	score := s.Score()
	chance := s.difficulty.SpawnChance(s.cfg.Spawn.Chance, score, s.elapsed)
	bombs := s.difficulty.BombProbability(s.bombProbability, score, s.elapsed)
	if plan, ok := s.spawner.Roll(chance, bombs); ok {
		s.throw(plan.kind, plan.pos, plan.impulse)
	}

	s.elapsed += dt
}

// RenderTick draws one frame at interpolation factor frame.Alpha, feeds the
// knife with the frame's touch, and checks the end conditions.
func (s *Session) RenderTick(frame core.Frame, c Canvas) {
	now := s.clock()
	frozen := s.frozen()

	c.Background(' ', core.ColorDefault)
	s.purge()

	floor := s.cfg.Display.Height + s.cfg.Spawn.DespawnMargin
	for k := range s.live {
		for _, t := range s.live[k] {
			if !frozen {
				t.renderUpdate(frame.Alpha, floor)
			}
			if !t.removed {
				t.draw(c, s.cfg.Throw.SpinFactor, s.cfg.Throw.MaxSpin)
			}
		}
	}

	if frozen {
		// Lift the pen so a drag across the pause cannot cut on resume.
		s.knife.Update(core.Touch{})
	} else if a, b, ok := s.knife.Update(frame.Input.Touch); ok {
		s.cut(a, b, now)
	}
	s.knife.Draw(c)

	if s.explosion != nil && s.explosion.draw(c, now.Sub(s.bombAt).Seconds()) && !s.ended {
		s.finish(EndBomb)
	}

	s.drawHUD(c, now)

	if !s.frozen() && s.RoundTime(now) >= s.cfg.RoundDuration() {
		s.finish(EndTimeout)
	}
}

// TogglePause pauses or resumes the round at the player's request. It has
// no effect once a bomb is cut or the round is over.
func (s *Session) TogglePause() {
	if s.paused || s.ended {
		return
	}
	now := s.clock()
	if s.userPaused {
		s.pausedTotal += now.Sub(s.userPausedAt)
		s.userPaused = false
		return
	}
	s.userPaused = true
	s.userPausedAt = now
}

// RoundTime returns the real time played so far, not counting player pauses.
func (s *Session) RoundTime(now time.Time) time.Duration {
	d := now.Sub(s.startedAt) - s.pausedTotal
	if s.userPaused {
		d -= now.Sub(s.userPausedAt)
	}
	return max(d, 0)
}

// Remaining returns the real time left in the round.
func (s *Session) Remaining(now time.Time) time.Duration {
	return max(s.cfg.RoundDuration()-s.RoundTime(now), 0)
}

// Points returns the exact score.
func (s *Session) Points() float64 { return s.points }

// Score returns the score rounded down, as shown and saved.
func (s *Session) Score() int { return int(math.Floor(s.points)) }

// Combo returns the current cut streak.
func (s *Session) Combo() int { return s.combo }

// Elapsed returns the simulated seconds of the round.
func (s *Session) Elapsed() float64 { return s.elapsed }

// Paused reports whether a bomb has frozen the round.
func (s *Session) Paused() bool { return s.paused }

// UserPaused reports whether the player paused the round.
func (s *Session) UserPaused() bool { return s.userPaused }

// Ended reports whether the round is over, and why.
func (s *Session) Ended() (bool, EndReason) { return s.ended, s.reason }

// Live returns the live objects of one kind.
func (s *Session) Live(k Kind) []*Throwable {
	if k >= kindCount {
		return nil
	}
	return s.live[k]
}

// Count returns the number of objects of every kind still held.
func (s *Session) Count() int {
	n := 0
	for k := range s.live {
		n += len(s.live[k])
	}
	return n
}

// Explosion returns the running bomb sequence, or nil.
func (s *Session) Explosion() *Explosion { return s.explosion }

// State returns the session state for the platform.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.Score(),
		GameOver: s.ended,
		Paused:   s.paused || s.userPaused,
	}
}

func (s *Session) frozen() bool {
	return s.paused || s.userPaused || s.ended
}

// throw adds a new object at pos and launches it with impulse.
func (s *Session) throw(kind Kind, pos, impulse core.Vec2) *Throwable {
	t := newThrowable(kind, s.sprites[kind], pos, s.cfg.Physics.Mass)
	t.body.ApplyImpulse(impulse)
	s.live[kind] = append(s.live[kind], t)
	return t
}

// purge drops removed objects from every collection.
func (s *Session) purge() {
	for k := range s.live {
		kept := s.live[k][:0]
		for _, t := range s.live[k] {
			if !t.removed {
				kept = append(kept, t)
			}
		}
		clear(s.live[k][len(kept):])
		s.live[k] = kept
	}
}

// cut tests the knife segment a-b against every cuttable object.
func (s *Session) cut(a, b core.Vec2, now time.Time) {
	for k := Kind(0); k < kindCount; k++ {
		if !k.Cuttable() {
			continue
		}
		for _, t := range s.live[k] {
			contact, hit := t.hit(a, b)
			if !hit {
				continue
			}
			switch kinds[k].reaction {
			case reactSplit:
				s.split(t, a, b, contact)
			case reactDetonate:
				s.detonate(t, now)
				return
			}
		}
	}
}

// split removes a cut fruit, replaces it with two halves pushed apart along
// the perpendicular of the cut, and scores the cut.
func (s *Session) split(t *Throwable, a, b, contact core.Vec2) {
	t.removed = true

	var n core.Vec2
	if dir, ok := b.Sub(a).SafeNormalize(); ok {
		n = dir.Perp()
	} else if n, ok = contact.SafeNormalize(); !ok {
		n = core.V(1, 0)
	}
	// The left half always flies left.
	if n.X > 0 {
		n = n.Neg()
	}
	j := n.Scale(s.cfg.Throw.SplitImpulse)

	// Halves start where the fruit was drawn when it was cut.
	pos, vel := t.body.ShownPosition(), t.body.ShownVelocity()
	offset := n.Scale(t.radius / 4)
	for i, dir := range [2]float64{1, -1} {
		shard := newThrowable(KindShard, s.halves[t.kind][i], pos.Add(offset.Scale(dir)), s.cfg.Physics.Mass)
		shard.body.SetVelocity(vel)
		shard.impulse = j.Scale(dir)
		shard.body.ApplyImpulse(shard.impulse)
		shard.age, shard.prevAge, shard.shownAge = t.age, t.prevAge, t.shownAge
		s.live[KindShard] = append(s.live[KindShard], shard)
	}

	s.points += s.policy(s.multiplier, s.combo) * kinds[t.kind].weight
	s.combo++
	s.comboAt = s.elapsed
}

// detonate freezes the round on a bomb cut and starts the explosion. The
// bomb itself stays live so it is drawn frozen under the burst.
func (s *Session) detonate(t *Throwable, now time.Time) {
	s.paused = true
	s.pausedAt = s.elapsed
	s.bombAt = now
	s.explosion = newExplosion(t.body.ShownPosition(), s.cfg.Round)
	s.log.Info("bomb cut", "score", s.Score(), "at", s.pausedAt)
}

func (s *Session) finish(reason EndReason) {
	s.ended = true
	s.reason = reason
	s.log.Info("round ended", "reason", reason, "score", s.Score())
}

func (s *Session) drawHUD(c Canvas, now time.Time) {
	c.DrawText(1, 0, fmt.Sprintf("Score: %d", s.Score()), core.ColorBrightWhite)
	c.DrawTextRight(0, fmt.Sprintf("Time: %2.0fs ", math.Ceil(s.Remaining(now).Seconds())), core.ColorBrightWhite)

	if s.combo > 1 {
		lit, _ := s.highlight.Set(float32(s.elapsed - s.comboAt))
		color := core.ColorYellow
		if lit > 0.25 {
			color = core.ColorBrightYellow
		}
		c.DrawText(1, 1, fmt.Sprintf("Combo x%d", s.combo), color)
	}

	switch {
	case s.userPaused:
		c.DrawBanner("PAUSED", core.ColorBrightWhite)
	case s.ended && s.reason == EndTimeout:
		c.DrawBanner("TIME UP", core.ColorBrightWhite)
	case s.ended && s.reason == EndBomb:
		c.DrawBanner("BOOM", core.ColorRed)
	}
}
