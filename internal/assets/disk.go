package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrNotFound error = errors.New("asset not found")

// DiskStore keeps uploaded assets as plain files in a single content
// directory. Stored names are "<uuid>_<sanitized original filename>" so
// two uploads can never collide.
type DiskStore struct {
	logs *zap.SugaredLogger
	dir  string
}

func NewDiskStore(logger *zap.SugaredLogger, dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create asset directory: %w", err)
	}
	return &DiskStore{
		logs: logger,
		dir:  dir,
	}, nil
}

// Store writes the content to a temporary file and renames it into place,
// so a crash mid-write never leaves a partially written asset under its
// final name.
func (s *DiskStore) Store(ctx context.Context, content io.Reader, originalName string) (string, error) {
	name := fmt.Sprintf("%s_%s", uuid.NewString(), SanitizeFilename(originalName))

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	if _, err := io.Copy(tmp, content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write asset content: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("rename asset into place: %w", err)
	}

	return name, nil
}

// Delete removes the named asset. Deletion is best-effort: a missing file
// is fine and any other failure is logged, never surfaced.
func (s *DiskStore) Delete(ctx context.Context, name string) {
	if !validName(name) {
		return
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logs.Warnw("failed to delete asset", "asset", name, "error", err)
	}
}

func (s *DiskStore) Retrieve(ctx context.Context, name string) (io.ReadCloser, error) {
	if !validName(name) {
		return nil, ErrNotFound
	}
	file, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("open asset: %w", err)
	}
	return file, nil
}

// SanitizeFilename reduces an uploaded filename to a safe base name:
// path components are stripped and anything outside [A-Za-z0-9._-] is
// replaced with an underscore.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	cleaned := strings.Trim(b.String(), "._")
	if cleaned == "" {
		return "file"
	}
	return cleaned
}

func validName(name string) bool {
	return name != "" && !strings.ContainsAny(name, "/\\") && name == filepath.Base(name)
}
