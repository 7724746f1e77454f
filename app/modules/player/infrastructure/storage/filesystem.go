// Package playerstorage keeps uploaded roster files on local disk.
package playerstorage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	playerservice "github.com/Black-And-White-Club/fantasy-league/app/modules/player/application"
)

// ErrInvalidName is returned for names that would escape the archive root.
var ErrInvalidName = errors.New("invalid archive name")

// FileStore writes artifacts below a root directory.
type FileStore struct {
	root string
	perm fs.FileMode
}

// NewFileStore creates a FileStore rooted at root. The directory is created
// lazily on the first Save.
func NewFileStore(root string) *FileStore {
	return &FileStore{root: root, perm: 0o640}
}

// Root returns the directory artifacts are written under.
func (s *FileStore) Root() string { return s.root }

// Save writes data to root/subfolder/filename, refusing to overwrite.
func (s *FileStore) Save(ctx context.Context, subfolder, filename string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !safeSegment(filename) || (subfolder != "" && !safeSegment(subfolder)) {
		return fmt.Errorf("%w: %q/%q", ErrInvalidName, subfolder, filename)
	}

	dir := filepath.Join(s.root, subfolder)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(dir, filename), os.O_WRONLY|os.O_CREATE|os.O_EXCL, s.perm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return playerservice.ErrArtifactExists
		}
		return fmt.Errorf("failed to open archive file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write archive file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close archive file: %w", err)
	}
	return nil
}

func safeSegment(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}

var _ playerservice.ArchiveStore = (*FileStore)(nil)
