package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/mindtrackhq/mindtrack/internal/constants"
	"github.com/mindtrackhq/mindtrack/internal/logger"
)

const timestampFormat = "20060102-150405"

// Backup names one retained snapshot of the data directory.
type Backup struct {
	Name      string
	Path      string
	CreatedAt time.Time
}

// Dir returns the backup directory for a data path. Backups live next to the
// data directory so they are never swept into later snapshots.
func Dir(dataPath string) string {
	return filepath.Join(filepath.Dir(dataPath), constants.BackupDirName)
}

// Create snapshots the top-level files of the data directory into a new
// timestamped backup and prunes the oldest snapshots beyond the retention
// limit.
func Create(dataPath string) (Backup, error) {
	name := constants.BackupFilePrefix + time.Now().Format(timestampFormat)
	dest := filepath.Join(Dir(dataPath), name)
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return Backup{}, fmt.Errorf("failed to create backup dir: %w", err)
	}

	if err := copyFiles(dataPath, dest); err != nil {
		return Backup{}, err
	}
	if err := prune(dataPath); err != nil {
		logger.Warn("could not prune old backups", "error", err)
	}

	return Backup{Name: name, Path: dest, CreatedAt: time.Now()}, nil
}

// List returns the retained backups, newest first.
func List(dataPath string) ([]Backup, error) {
	entries, err := os.ReadDir(Dir(dataPath))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read backup dir: %w", err)
	}

	var backups []Backup
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), constants.BackupFilePrefix) {
			continue
		}
		b := Backup{
			Name: entry.Name(),
			Path: filepath.Join(Dir(dataPath), entry.Name()),
		}
		stamp := strings.TrimPrefix(entry.Name(), constants.BackupFilePrefix)
		if t, err := time.ParseInLocation(timestampFormat, stamp, time.Local); err == nil {
			b.CreatedAt = t
		}
		backups = append(backups, b)
	}

	sort.Slice(backups, func(i, j int) bool { return backups[i].Name > backups[j].Name })
	return backups, nil
}

// Restore copies a named backup's files back over the data directory.
func Restore(dataPath, name string) error {
	src := filepath.Join(Dir(dataPath), name)
	if _, err := os.Stat(src); err != nil {
		return fmt.Errorf("backup %s not found: %w", name, err)
	}
	if err := os.MkdirAll(dataPath, 0o755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}
	return copyFiles(src, dataPath)
}

// prune removes the oldest backups beyond the retention limit.
func prune(dataPath string) error {
	backups, err := List(dataPath)
	if err != nil {
		return err
	}
	for _, b := range backups[min(len(backups), constants.MaxBackups):] {
		if err := os.RemoveAll(b.Path); err != nil {
			return fmt.Errorf("failed to remove backup %s: %w", b.Name, err)
		}
		logger.Debug("pruned backup", "name", b.Name)
	}
	return nil
}

// copyFiles copies the regular files at the top level of src into dest.
// Subdirectories (caches, nested backups) are not part of a snapshot.
func copyFiles(src, dest string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", src, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == constants.LockfileName {
			continue
		}
		if err := copyFile(filepath.Join(src, entry.Name()), filepath.Join(dest, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dest, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}
	return out.Close()
}
