package prefs

import (
	"errors"
	"testing"
)

type memBackend struct {
	items   map[string][]byte
	loadErr error
	saveErr error
}

func newMemBackend() *memBackend {
	return &memBackend{items: make(map[string][]byte)}
}

func (m *memBackend) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memBackend) SaveItem(key string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items[key] = data
	return nil
}

func TestLoadEmpty(t *testing.T) {
	s := New(newMemBackend())
	p, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if p != (Prefs{}) {
		t.Errorf("Load() = %+v, want zero", p)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := New(newMemBackend())
	want := Prefs{Initials: "ABC", LastMode: "hard"}
	if err := s.Save(want); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestUpdateKeepsOtherFields(t *testing.T) {
	s := New(newMemBackend())
	s.Save(Prefs{Initials: "ABC", LastMode: "easy"})

	if err := s.Update(func(p *Prefs) { p.LastMode = "normal" }); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	got, _ := s.Load()
	if got.Initials != "ABC" || got.LastMode != "normal" {
		t.Errorf("after Update = %+v", got)
	}
}

func TestBackendErrorsWrapped(t *testing.T) {
	boom := errors.New("disk gone")

	b := newMemBackend()
	b.loadErr = boom
	if _, err := New(b).Load(); !errors.Is(err, boom) {
		t.Errorf("Load() error = %v, want wrapped %v", err, boom)
	}

	b = newMemBackend()
	b.saveErr = boom
	if err := New(b).Save(Prefs{Initials: "X"}); !errors.Is(err, boom) {
		t.Errorf("Save() error = %v, want wrapped %v", err, boom)
	}
}

func TestCorruptData(t *testing.T) {
	b := newMemBackend()
	b.items[itemKey] = []byte("initials: [unterminated")
	if _, err := New(b).Load(); err == nil {
		t.Error("Load() should fail on corrupt data")
	}
}

func TestNilStoreIsNoop(t *testing.T) {
	var s *Store
	if err := s.Save(Prefs{Initials: "ABC"}); err != nil {
		t.Errorf("nil Save() error: %v", err)
	}
	p, err := s.Load()
	if err != nil || p != (Prefs{}) {
		t.Errorf("nil Load() = %+v, %v", p, err)
	}
}
