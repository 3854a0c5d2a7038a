package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LocalStore saves uploaded files (company logos, resume documents) under a
// base directory on local disk. Filenames are namespaced per owner and
// timestamped so replacing a file never collides with an earlier upload.
type LocalStore struct {
	baseDir string
}

func NewLocalStore(baseDir string) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create base dir: %w", err)
	}
	return &LocalStore{baseDir: baseDir}, nil
}

// Save writes src into subdir and returns the generated filename.
func (s *LocalStore) Save(subdir, prefix, originalName string, src io.Reader) (string, error) {
	dir := filepath.Join(s.baseDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: create dir: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	filename := fmt.Sprintf("%s_%s%s", prefix, time.Now().Format("20060102_150405"), ext)

	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", fmt.Errorf("storage: create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("storage: write file: %w", err)
	}
	return filename, nil
}

// Open returns a reader for a previously saved file.
func (s *LocalStore) Open(subdir, filename string) (*os.File, error) {
	return os.Open(filepath.Join(s.baseDir, subdir, filepath.Base(filename)))
}

// Remove deletes a stored file. Missing files are not an error; the caller
// only cares that the file is gone.
func (s *LocalStore) Remove(subdir, filename string) error {
	err := os.Remove(filepath.Join(s.baseDir, subdir, filepath.Base(filename)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
