package lockcheck

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/mindtrackhq/mindtrack/internal/constants"
	"github.com/mindtrackhq/mindtrack/internal/logger"
)

var (
	findProcessFunc = ps.FindProcess
	pidFunc         = os.Getpid
)

// ErrLocked is returned when another live process holds the data directory.
var ErrLocked = errors.New("data directory is locked by another process")

// Info describes the current lockfile, if any.
type Info struct {
	PID   int
	Alive bool
}

// Acquire takes the single-writer lock for the data directory, replacing a
// stale lockfile left by a dead process. The returned release function removes
// the lock.
func Acquire(dataPath string) (func(), error) {
	lockPath := filepath.Join(dataPath, constants.LockfileName)

	if info, err := Inspect(dataPath); err == nil {
		if info.Alive {
			return nil, fmt.Errorf("%w (pid %d)", ErrLocked, info.PID)
		}
		logger.Warn("removing stale lockfile", "pid", info.PID)
		if err := os.Remove(lockPath); err != nil {
			return nil, fmt.Errorf("failed to remove stale lockfile: %w", err)
		}
	}

	content := strconv.Itoa(pidFunc())
	if err := os.WriteFile(lockPath, []byte(content), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write lockfile: %w", err)
	}

	return func() {
		if err := os.Remove(lockPath); err != nil && !os.IsNotExist(err) {
			logger.Warn("could not remove lockfile", "error", err)
		}
	}, nil
}

// Inspect reads the lockfile and reports whether its holder is still running.
// A missing lockfile returns os.ErrNotExist.
func Inspect(dataPath string) (Info, error) {
	lockPath := filepath.Join(dataPath, constants.LockfileName)
	content, err := os.ReadFile(lockPath)
	if err != nil {
		return Info{}, err
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(content)))
	if err != nil {
		// A malformed lockfile cannot name a live holder; treat it as stale
		return Info{PID: 0, Alive: false}, nil
	}

	process, err := findProcessFunc(pid)
	alive := err == nil && process != nil
	return Info{PID: pid, Alive: alive}, nil
}
