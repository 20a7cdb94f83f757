package guard

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/fekuna/omnipos-catalog-service/internal/apperr"
	"github.com/jackc/pgx/v5/pgconn"
)

type row struct{ Key string }

// keyedStore imitates a table with a UNIQUE key: the check reads a
// snapshot, the insert is authoritative.
type keyedStore struct {
	mu      sync.Mutex
	rows    map[string]row
	started chan struct{}
	release chan struct{}
}

func newKeyedStore() *keyedStore {
	return &keyedStore{rows: map[string]row{}}
}

func (s *keyedStore) exists(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	_, ok := s.rows[key]
	s.mu.Unlock()
	if s.started != nil {
		s.started <- struct{}{}
		<-s.release
	}
	return ok, nil
}

func (s *keyedStore) insert(key string) func(context.Context) (*row, error) {
	return func(context.Context) (*row, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.rows[key]; ok {
			return nil, &pgconn.PgError{Code: "23505", ConstraintName: "location_code_key"}
		}
		r := row{Key: key}
		s.rows[key] = r
		return &r, nil
	}
}

func TestCreateUnique(t *testing.T) {
	store := newKeyedStore()
	ctx := context.Background()

	got, err := CreateUnique(ctx, store.exists, "WH-01", "Location code", store.insert("WH-01"))
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	if got.Key != "WH-01" {
		t.Fatalf("created %+v", got)
	}

	_, err = CreateUnique(ctx, store.exists, "WH-01", "Location code", store.insert("WH-01"))
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("second create: kind %v, err %v", apperr.KindOf(err), err)
	}
	if err.Error() != "Location code already exists" {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestCreateUniqueSkipsInsertWhenTaken(t *testing.T) {
	called := false
	exists := func(context.Context, string) (bool, error) { return true, nil }
	insert := func(context.Context) (*row, error) {
		called = true
		return &row{}, nil
	}

	if _, err := CreateUnique(context.Background(), exists, "X", "Product SKU", insert); apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
	if called {
		t.Fatal("insert ran after a failed pre-check")
	}
}

func TestCreateUniquePropagatesStoreFailures(t *testing.T) {
	boom := apperr.Transient("connection pool exhausted", errors.New("deadline"))
	exists := func(context.Context, string) (bool, error) { return false, boom }
	insert := func(context.Context) (*row, error) { return nil, nil }

	_, err := CreateUnique(context.Background(), exists, "X", "Product SKU", insert)
	if !errors.Is(err, boom) {
		t.Fatalf("expected pre-check failure, got %v", err)
	}

	exists = func(context.Context, string) (bool, error) { return false, nil }
	insert = func(context.Context) (*row, error) { return nil, errors.New("disk full") }
	_, err = CreateUnique(context.Background(), exists, "X", "Product SKU", insert)
	if err == nil || apperr.KindOf(err) == apperr.KindConflict {
		t.Fatalf("expected a non-conflict failure, got %v", err)
	}
}

// Both callers pass the pre-check before either inserts. Exactly one must
// win; the other gets the constraint violation reported as a conflict.
func TestConcurrentCreatesWithSameKey(t *testing.T) {
	store := newKeyedStore()
	store.started = make(chan struct{})
	store.release = make(chan struct{})

	const callers = 2
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = CreateUnique(context.Background(), store.exists, "SKU-1", "Product SKU", store.insert("SKU-1"))
		}(i)
	}
	for i := 0; i < callers; i++ {
		<-store.started
	}
	close(store.release)
	wg.Wait()

	var ok, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case apperr.KindOf(err) == apperr.KindConflict:
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 1 || conflicts != 1 {
		t.Fatalf("ok=%d conflicts=%d, want 1 and 1", ok, conflicts)
	}
	if len(store.rows) != 1 {
		t.Fatalf("rows = %d", len(store.rows))
	}
}
