package resource

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/apperr"
	"github.com/fekuna/omnipos-catalog-service/internal/query"
)

// MemoryTable describes how a MemoryStore reads and stamps rows of T. It
// follows the same Table so sorting and delete policy match the store.
type MemoryTable[T any] struct {
	Table Table
	ID    func(*T) string
	Key   func(*T) string
	// Active reports the lifecycle flag. Required for SoftDelete tables.
	Active func(*T) bool
	// Retire clears the lifecycle flag.
	Retire func(*T)
	// Touch sets updated_at, never before created_at.
	Touch func(*T, time.Time)
	// Order compares two rows by column name.
	Order map[string]func(a, b *T) int
}

// MemoryStore keeps rows in process. The key index covers every row, live
// or not, the way the UNIQUE constraint does.
type MemoryStore[T any] struct {
	t    MemoryTable[T]
	mu   sync.RWMutex
	rows map[string]*T
}

func NewMemoryStore[T any](t MemoryTable[T]) *MemoryStore[T] {
	return &MemoryStore[T]{t: t, rows: make(map[string]*T)}
}

func (s *MemoryStore[T]) live(item *T) bool {
	if s.t.Table.Delete == SoftDelete && s.t.Active != nil {
		return s.t.Active(item)
	}
	return true
}

func (s *MemoryStore[T]) List(_ context.Context, p query.Params, match func(*T) bool) ([]T, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]T, 0, len(s.rows))
	for _, row := range s.rows {
		if s.live(row) && (match == nil || match(row)) {
			items = append(items, *row)
		}
	}

	column, dir := s.t.Table.Sort.Resolve(p.Sort)
	cmp := s.t.Order[column]
	sort.SliceStable(items, func(i, j int) bool {
		c := 0
		if cmp != nil {
			c = cmp(&items[i], &items[j])
		}
		if c == 0 {
			c = strings.Compare(s.t.ID(&items[i]), s.t.ID(&items[j]))
		}
		if dir == query.Desc {
			return c > 0
		}
		return c < 0
	})

	total := len(items)
	start := p.Offset()
	if start < 0 || start >= total || p.Size <= 0 {
		return []T{}, total, nil
	}
	end := start + p.Size
	if end > total || end < start {
		end = total
	}
	return items[start:end], total, nil
}

// Find returns the first live row matching, or nil.
func (s *MemoryStore[T]) Find(_ context.Context, match func(*T) bool) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, row := range s.rows {
		if s.live(row) && match(row) {
			item := *row
			return &item, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore[T]) FindByID(_ context.Context, id string) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	row, ok := s.rows[id]
	if !ok || !s.live(row) {
		return nil, nil
	}
	item := *row
	return &item, nil
}

func (s *MemoryStore[T]) KeyExists(_ context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.keyTaken(key), nil
}

func (s *MemoryStore[T]) keyTaken(key string) bool {
	for _, row := range s.rows {
		if s.t.Key(row) == key {
			return true
		}
	}
	return false
}

func (s *MemoryStore[T]) Insert(_ context.Context, item *T) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.keyTaken(s.t.Key(item)) {
		return nil, apperr.Conflict("%s already exists", s.t.Table.KeyLabel)
	}
	row := *item
	s.rows[s.t.ID(&row)] = &row
	out := row
	return &out, nil
}

// Update applies mutate to the live row with id, or returns nil.
func (s *MemoryStore[T]) Update(_ context.Context, id string, at time.Time, mutate func(*T)) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[id]
	if !ok || !s.live(row) {
		return nil, nil
	}
	mutate(row)
	s.t.Touch(row, at)
	out := *row
	return &out, nil
}

func (s *MemoryStore[T]) Delete(_ context.Context, id string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[id]
	if !ok {
		return nil
	}
	if s.t.Table.Delete == HardDelete {
		delete(s.rows, id)
		return nil
	}
	if s.live(row) {
		s.t.Retire(row)
		s.t.Touch(row, at)
	}
	return nil
}

// ContainsFold is the in-memory counterpart of an ILIKE '%sub%' filter.
func ContainsFold(s, sub string) bool {
	return sub == "" || strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// CompareTime orders timestamps for MemoryTable.Order.
func CompareTime(a, b time.Time) int { return a.Compare(b) }
