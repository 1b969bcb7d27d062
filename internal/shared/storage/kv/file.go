package kv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File is a Store keeping one file per key under a base directory.
type File struct {
	baseDir string
}

// NewFile constructs a file-backed store rooted at baseDir. The directory
// is created lazily on the first write.
func NewFile(baseDir string) *File {
	return &File{baseDir: baseDir}
}

// Get reads the value file for key.
func (f *File) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("kv file get %s: %w", key, err)
	}
	return string(data), true, nil
}

// Set writes the value file for key, replacing any previous content.
func (f *File) Set(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(f.baseDir, 0o755); err != nil {
		return fmt.Errorf("kv file set %s: mkdir: %w", key, err)
	}
	if err := os.WriteFile(f.path(key), []byte(value), 0o644); err != nil {
		return fmt.Errorf("kv file set %s: %w", key, err)
	}
	return nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.baseDir, sanitizeKey(key)+".json")
}

// sanitizeKey keeps file names flat and traversal-safe.
func sanitizeKey(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := strings.Trim(b.String(), ".")
	if out == "" {
		return "key"
	}
	return out
}
