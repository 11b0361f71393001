package slicer

// Kind is the closed set of thrown object variants.
type Kind uint8

const (
	KindApple Kind = iota
	KindBanana
	KindOrange
	KindCherry
	KindStrawberry
	KindPineapple
	KindBomb
	KindShard

	kindCount
)

// reaction is what happens when the knife crosses an object.
type reaction uint8

const (
	reactNone     reaction = iota // not cuttable
	reactSplit                    // fruit: split into two shards and score
	reactDetonate                 // bomb: freeze and end the round
)

type kindInfo struct {
	name     string
	asset    string
	radius   float64 // collision radius in display units
	weight   float64 // score weight per cut
	reaction reaction
}

// kinds is the behavior table indexed by Kind.
var kinds = [kindCount]kindInfo{
	KindApple:      {name: "apple", asset: "apple", radius: 14, weight: 1, reaction: reactSplit},
	KindBanana:     {name: "banana", asset: "bananas", radius: 14, weight: 1, reaction: reactSplit},
	KindOrange:     {name: "orange", asset: "orange", radius: 14, weight: 1, reaction: reactSplit},
	KindCherry:     {name: "cherry", asset: "cherries", radius: 12, weight: 1, reaction: reactSplit},
	KindStrawberry: {name: "strawberry", asset: "strawberry", radius: 12, weight: 1, reaction: reactSplit},
	KindPineapple:  {name: "pineapple", asset: "pineapple", radius: 16, weight: 1, reaction: reactSplit},
	KindBomb:       {name: "bomb", asset: "bomb", radius: 13, reaction: reactDetonate},
	KindShard:      {name: "shard"},
}

// fruitKinds are the kinds the spawner picks from uniformly when it does
// not throw a bomb.
var fruitKinds = []Kind{KindApple, KindBanana, KindOrange, KindCherry, KindStrawberry, KindPineapple}

// String returns the kind's name.
func (k Kind) String() string {
	if k >= kindCount {
		return "unknown"
	}
	return kinds[k].name
}

// Radius returns the collision radius for the kind.
func (k Kind) Radius() float64 {
	if k >= kindCount {
		return 0
	}
	return kinds[k].radius
}

// Cuttable reports whether the knife reacts to this kind.
func (k Kind) Cuttable() bool {
	return k < kindCount && kinds[k].reaction != reactNone
}
