package store

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// RecordStore is the subset of Store that consumers depend on.
type RecordStore interface {
	Get(key string) (string, bool, error)
	Put(key, value string) error
}

// Verify Store implements RecordStore at compile time.
var _ RecordStore = (*Store)(nil)

func openMemory(t *testing.T) *Store {
	t.Helper()
	st, err := Open(Memory)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestOpen(t *testing.T) {
	st := openMemory(t)

	var name string
	err := st.db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='records'").Scan(&name)
	if err != nil {
		t.Fatalf("records table not created: %v", err)
	}
	if name != "records" {
		t.Errorf("expected table name 'records', got %q", name)
	}
}

func TestGetMissing(t *testing.T) {
	st := openMemory(t)

	v, ok, err := st.Get("absent")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok || v != "" {
		t.Errorf("expected missing record, got %q ok=%v", v, ok)
	}
}

func TestPutOverwrites(t *testing.T) {
	st := openMemory(t)

	if err := st.Put("k", "one"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := st.Put("k", "two"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	v, ok, err := st.Get("k")
	if err != nil || !ok {
		t.Fatalf("Get failed: ok=%v err=%v", ok, err)
	}
	if v != "two" {
		t.Errorf("expected latest value 'two', got %q", v)
	}

	var n int
	if err := st.db.QueryRow("SELECT COUNT(*) FROM records").Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("expected a single row, got %d", n)
	}
}

func TestUpdatedAt(t *testing.T) {
	st := openMemory(t)
	fixed := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	st.now = func() time.Time { return fixed }

	if _, ok, err := st.UpdatedAt("k"); ok || err != nil {
		t.Fatalf("expected no timestamp before write, ok=%v err=%v", ok, err)
	}
	st.Put("k", "v")

	got, ok, err := st.UpdatedAt("k")
	if err != nil || !ok {
		t.Fatalf("UpdatedAt failed: ok=%v err=%v", ok, err)
	}
	if !got.Equal(fixed) {
		t.Errorf("UpdatedAt = %v, want %v", got, fixed)
	}
}

func TestMemoryStoresAreIsolated(t *testing.T) {
	a := openMemory(t)
	b := openMemory(t)

	a.Put("k", "a")
	if _, ok, _ := b.Get("k"); ok {
		t.Error("separate in-memory stores must not share records")
	}
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "realtube.db")

	st, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := st.Put("k", `["x"]`); err != nil {
		t.Fatal(err)
	}
	st.Close()

	st, err = Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer st.Close()
	v, ok, err := st.Get("k")
	if err != nil || !ok || v != `["x"]` {
		t.Errorf("after reopen got %q ok=%v err=%v", v, ok, err)
	}
}

func TestConcurrentAccess(t *testing.T) {
	st := openMemory(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", n)
			if err := st.Put(key, "v"); err != nil {
				t.Errorf("Put %s: %v", key, err)
			}
			if _, ok, err := st.Get(key); !ok || err != nil {
				t.Errorf("Get %s: ok=%v err=%v", key, ok, err)
			}
		}(i)
	}
	wg.Wait()
}
