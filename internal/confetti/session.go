package confetti

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// SessionState is the opaque blob handed to a StateStore. It captures
// everything needed to resume a run: the seed, the generator state,
// session counters, and the live particle set.
type SessionState struct {
	Seed     uint64     `json:"seed"`
	RNGState uint64     `json:"rngState"`
	Bursts   int        `json:"bursts"`
	Elapsed  float64    `json:"elapsed"`
	Live     []Particle `json:"live"`
}

// CaptureState snapshots the system into a serializable blob.
func (ps *ParticleSystem) CaptureState(elapsed float64) SessionState {
	live := make([]Particle, len(ps.P))
	copy(live, ps.P)
	return SessionState{
		Seed:     ps.seed,
		RNGState: ps.rng.State(),
		Bursts:   ps.bursts,
		Elapsed:  elapsed,
		Live:     live,
	}
}

// RestoreState replaces the system's collection and generator state
// with a previously captured blob. Particles beyond the cap are
// dropped oldest-first.
func (ps *ParticleSystem) RestoreState(st SessionState) {
	ps.seed = st.Seed
	ps.rng.SetState(st.RNGState)
	ps.bursts = st.Bursts
	live := st.Live
	if len(live) > ps.Max {
		live = live[len(live)-ps.Max:]
	}
	ps.P = append(ps.P[:0], live...)
	ps.ovrIdx = 0
}

// StateStore persists opaque session blobs.
type StateStore interface {
	Save(data []byte) error
	Load() ([]byte, error)
}

// FileStateStore keeps the blob in a single file.
type FileStateStore struct {
	Path string
}

func DefaultStateStore() *FileStateStore {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return &FileStateStore{Path: filepath.Join(dir, "confetti", "session.json")}
}

func (s *FileStateStore) Save(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("state dir: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

func (s *FileStateStore) Load() ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read state: %w", err)
	}
	return data, nil
}

// SaveSession encodes the state and hands it to the store in the
// background. Completion is reported once on the bus as an
// EventStateSaved, successful or not; there is no retry.
func SaveSession(ps *ParticleSystem, elapsed float64, store StateStore, bus *EventBus, done chan<- Event) {
	st := ps.CaptureState(elapsed)
	go func() {
		data, err := json.Marshal(st)
		if err == nil {
			err = store.Save(data)
		}
		ev := Event{Type: EventStateSaved, Err: err}
		if done != nil {
			done <- ev
			return
		}
		if bus != nil {
			bus.Emit(ev)
		}
	}()
}

// LoadSession reads and decodes a previously saved blob.
func LoadSession(store StateStore) (SessionState, error) {
	var st SessionState
	data, err := store.Load()
	if err != nil {
		return st, err
	}
	if err := json.Unmarshal(data, &st); err != nil {
		return st, fmt.Errorf("decode state: %w", err)
	}
	return st, nil
}
