package lockcheck

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/mitchellh/go-ps"

	"github.com/mindtrackhq/mindtrack/internal/constants"
)

func stubProcesses(t *testing.T, alive map[int]bool) {
	t.Helper()
	orig := findProcessFunc
	findProcessFunc = func(pid int) (ps.Process, error) {
		if alive[pid] {
			return fakeProcess{pid: pid}, nil
		}
		return nil, nil
	}
	t.Cleanup(func() { findProcessFunc = orig })
}

type fakeProcess struct{ pid int }

func (p fakeProcess) Pid() int           { return p.pid }
func (p fakeProcess) PPid() int          { return 0 }
func (p fakeProcess) Executable() string { return constants.AppName }

func TestAcquireAndRelease(t *testing.T) {
	stubProcesses(t, nil)
	dir := t.TempDir()

	release, err := Acquire(dir)
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}

	lockPath := filepath.Join(dir, constants.LockfileName)
	if _, err := os.Stat(lockPath); err != nil {
		t.Fatalf("lockfile not written: %v", err)
	}

	release()
	if _, err := os.Stat(lockPath); !os.IsNotExist(err) {
		t.Error("lockfile survived release")
	}
}

func TestAcquireFailsWhenHolderAlive(t *testing.T) {
	stubProcesses(t, map[int]bool{4242: true})
	dir := t.TempDir()
	lockPath := filepath.Join(dir, constants.LockfileName)
	if err := os.WriteFile(lockPath, []byte("4242"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Acquire(dir); !errors.Is(err, ErrLocked) {
		t.Errorf("Acquire() error = %v, want ErrLocked", err)
	}
}

func TestAcquireReplacesStaleLock(t *testing.T) {
	stubProcesses(t, nil)
	dir := t.TempDir()
	lockPath := filepath.Join(dir, constants.LockfileName)
	if err := os.WriteFile(lockPath, []byte("4242"), 0o644); err != nil {
		t.Fatal(err)
	}

	release, err := Acquire(dir)
	if err != nil {
		t.Fatalf("Acquire() over stale lock error: %v", err)
	}
	defer release()

	content, err := os.ReadFile(lockPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != strconv.Itoa(os.Getpid()) {
		t.Errorf("lockfile holds %q, want our pid", content)
	}
}

func TestInspect(t *testing.T) {
	stubProcesses(t, map[int]bool{4242: true})
	dir := t.TempDir()
	lockPath := filepath.Join(dir, constants.LockfileName)

	if _, err := Inspect(dir); !os.IsNotExist(err) {
		t.Errorf("Inspect() with no lockfile error = %v, want not-exist", err)
	}

	if err := os.WriteFile(lockPath, []byte("4242"), 0o644); err != nil {
		t.Fatal(err)
	}
	info, err := Inspect(dir)
	if err != nil {
		t.Fatalf("Inspect() error: %v", err)
	}
	if info.PID != 4242 || !info.Alive {
		t.Errorf("Inspect() = %+v, want live pid 4242", info)
	}

	if err := os.WriteFile(lockPath, []byte("not-a-pid"), 0o644); err != nil {
		t.Fatal(err)
	}
	info, err = Inspect(dir)
	if err != nil {
		t.Fatalf("Inspect() malformed lockfile error: %v", err)
	}
	if info.Alive {
		t.Error("malformed lockfile reported a live holder")
	}
}
