// Package scoreboard persists the best runs.
package scoreboard

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Record is one player's best run. Names are matched case-insensitively
// after trimming, and a record only ever moves up.
type Record struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Wave  int    `json:"wave"`
}

type Store interface {
	// Best returns the highest record, or nil when the board is empty.
	Best() (*Record, error)
	// Save upserts rec, keeping the higher score for an existing name.
	Save(rec Record) error
	// Top returns up to n records ordered by score, highest first.
	Top(n int) ([]Record, error)
}

var (
	ErrNegativeScore = errors.New("score must be non-negative")
	ErrEmptyName     = errors.New("name must not be empty")
	ErrUnknownStore  = errors.New("unknown score store")
)

// Open picks a store by kind: "file" (default), "sqlite" or "memory".
// Without a directory the disk-backed kinds fall back to memory.
func Open(kind, dir string) (Store, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if dir == "" && (kind == "" || kind == "file" || kind == "sqlite") {
		return NewMemoryStore(), nil
	}
	switch kind {
	case "", "file":
		return NewFileStore(dir)
	case "sqlite":
		return openSQLite(dir)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStore, kind)
	}
}

func validate(rec Record) error {
	if strings.TrimSpace(rec.Name) == "" {
		return ErrEmptyName
	}
	if rec.Score < 0 {
		return ErrNegativeScore
	}
	return nil
}

func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// upsert merges rec into list following the Record rules.
func upsert(list []Record, rec Record) []Record {
	for i := range list {
		if sameName(list[i].Name, rec.Name) {
			if rec.Score > list[i].Score {
				list[i].Score = rec.Score
				list[i].Wave = rec.Wave
			}
			return list
		}
	}
	return append(list, rec)
}

func top(list []Record, n int) []Record {
	out := append([]Record(nil), list...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// MemoryStore keeps records in process memory.
type MemoryStore struct {
	mu      sync.Mutex
	records []Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Best() (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.records) == 0 {
		return nil, nil
	}
	best := top(m.records, 1)[0]
	return &best, nil
}

func (m *MemoryStore) Save(rec Record) error {
	if err := validate(rec); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = upsert(m.records, rec)
	return nil
}

func (m *MemoryStore) Top(n int) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return top(m.records, n), nil
}
