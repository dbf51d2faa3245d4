package filelock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
)

func TestFor(t *testing.T) {
	lock := For("/tmp/handoff.json")
	if lock.Path() != "/tmp/handoff.json.lock" {
		t.Errorf("Expected lock path with %s suffix, got %s", LockSuffix, lock.Path())
	}
}

func TestLockCreatesParentDirectory(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "nested", "dir", "state.lock")

	lock := NewFileLock(lockPath)
	if err := lock.Lock(); err != nil {
		t.Fatalf("Lock failed: %v", err)
	}
	defer lock.Unlock()

	if _, err := os.Stat(lockPath); err != nil {
		t.Errorf("Expected lock file to exist: %v", err)
	}
}

func TestTryLockExcludes(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "state.lock")
	holder := NewFileLock(lockPath)
	other := NewFileLock(lockPath)

	if ok, err := holder.TryLock(); err != nil || !ok {
		t.Fatalf("First TryLock should succeed, got ok=%v err=%v", ok, err)
	}

	if ok, err := other.TryLock(); err != nil || ok {
		t.Fatalf("Second TryLock should fail while held, got ok=%v err=%v", ok, err)
	}

	if err := holder.Unlock(); err != nil {
		t.Fatalf("Unlock failed: %v", err)
	}

	if ok, _ := other.TryLock(); !ok {
		t.Error("TryLock should succeed after release")
	}
	other.Unlock()
}

func TestSharedLocksCoexist(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "state.lock")
	r1 := NewFileLock(lockPath)
	r2 := NewFileLock(lockPath)

	if err := r1.RLock(); err != nil {
		t.Fatalf("RLock failed: %v", err)
	}
	defer r1.Unlock()

	if err := r2.RLock(); err != nil {
		t.Fatalf("Second RLock failed: %v", err)
	}
	defer r2.Unlock()

	writer := NewFileLock(lockPath)
	if ok, _ := writer.TryLock(); ok {
		writer.Unlock()
		t.Error("Exclusive lock should not be granted while readers hold the lock")
	}
}

func TestAtomicWrite(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "handoff.json")

	if err := os.WriteFile(target, []byte("old"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := AtomicWrite(target, []byte("new")); err != nil {
		t.Fatalf("AtomicWrite failed: %v", err)
	}

	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new" {
		t.Errorf("Expected %q, got %q", "new", string(got))
	}

	info, _ := os.Stat(target)
	if info.Mode().Perm() != 0644 {
		t.Errorf("Expected permissions 0644, got %v", info.Mode().Perm())
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("Expected only the target file, found %d entries", len(entries))
	}
}

func TestLockAndRead(t *testing.T) {
	target := filepath.Join(t.TempDir(), "report.md")

	if err := LockAndWrite(target, []byte("# Report")); err != nil {
		t.Fatalf("LockAndWrite failed: %v", err)
	}

	data, err := LockAndRead(target)
	if err != nil {
		t.Fatalf("LockAndRead failed: %v", err)
	}
	if string(data) != "# Report" {
		t.Errorf("Unexpected content %q", string(data))
	}
}

func TestLockAndReadMissing(t *testing.T) {
	_, err := LockAndRead(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}

func TestLockAndRemove(t *testing.T) {
	target := filepath.Join(t.TempDir(), "handoff.json")
	if err := LockAndWrite(target, []byte("{}")); err != nil {
		t.Fatal(err)
	}

	if err := LockAndRemove(target); err != nil {
		t.Fatalf("LockAndRemove failed: %v", err)
	}
	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Error("Expected file to be removed")
	}

	// Second removal is a no-op
	if err := LockAndRemove(target); err != nil {
		t.Errorf("Removing a missing file should succeed, got %v", err)
	}
}

func TestConcurrentIncrements(t *testing.T) {
	dir := t.TempDir()
	counter := filepath.Join(dir, "counter")
	if err := os.WriteFile(counter, []byte("0"), 0644); err != nil {
		t.Fatal(err)
	}

	const workers = 5
	const rounds = 10

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < rounds; j++ {
				lock := For(counter)
				if err := lock.Lock(); err != nil {
					t.Errorf("Lock failed: %v", err)
					return
				}
				data, _ := os.ReadFile(counter)
				n, _ := strconv.Atoi(string(data))
				err := AtomicWrite(counter, []byte(fmt.Sprintf("%d", n+1)))
				lock.Unlock()
				if err != nil {
					t.Errorf("AtomicWrite failed: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	data, _ := os.ReadFile(counter)
	if string(data) != strconv.Itoa(workers*rounds) {
		t.Errorf("Expected %d, got %s (lost update)", workers*rounds, string(data))
	}
}
