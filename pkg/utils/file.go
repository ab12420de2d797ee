package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// WriteFile replaces the contents of path with data. The content is
// written to a temp file next to the target and renamed into place, so
// readers never observe a partially written file. A symlinked path is
// resolved first and its target is replaced, leaving the link intact.
// New files get perm filtered by the process umask, like os.WriteFile.
func WriteFile(path string, data []byte, perm os.FileMode) (err error) {
	target, err := resolveTarget(path)
	if err != nil {
		return err
	}

	dir, base := filepath.Split(target)
	if dir == "" {
		dir = "."
	}
	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", base, uuid.NewString()))

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err = f.Write(data); err != nil {
		return err
	}
	if err = f.Sync(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, target)
}

// resolveTarget follows symlinks when path already exists
func resolveTarget(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err == nil {
		return resolved, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	// Dangling link: write to where it points
	if dest, lerr := os.Readlink(path); lerr == nil {
		if !filepath.IsAbs(dest) {
			dest = filepath.Join(filepath.Dir(path), dest)
		}
		return dest, nil
	}
	return path, nil
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
