package persist

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Hami23p/Learnify/internal/codec"
	"github.com/Hami23p/Learnify/internal/learning"
)

// FileStore keeps each collection in its own flat file.
type FileStore struct {
	usersPath   string
	coursesPath string
}

// NewFileStore creates a store over the given file paths. The files are
// created on first save.
func NewFileStore(usersPath, coursesPath string) *FileStore {
	return &FileStore{usersPath: usersPath, coursesPath: coursesPath}
}

func (s *FileStore) LoadUsers(_ context.Context) ([]*learning.User, error) {
	f, err := openForRead(s.usersPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return codec.DecodeUsers(f)
}

func (s *FileStore) SaveUsers(_ context.Context, users []*learning.User) error {
	f, err := openForWrite(s.usersPath)
	if err != nil {
		return err
	}
	if err := codec.EncodeUsers(f, users); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (s *FileStore) LoadCourses(_ context.Context) ([]*learning.Course, error) {
	f, err := openForRead(s.coursesPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return codec.DecodeCourses(f)
}

func (s *FileStore) SaveCourses(_ context.Context, courses []*learning.Course) error {
	f, err := openForWrite(s.coursesPath)
	if err != nil {
		return err
	}
	if err := codec.EncodeCourses(f, courses); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func openForRead(path string) (*os.File, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return f, nil
}

func openForWrite(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s for write: %w", path, err)
	}
	return f, nil
}
