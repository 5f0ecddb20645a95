// Package persist stores the user and course collections. Every backend
// keeps the same record layout as the flat files and never stores quizzes,
// teaching lists, enrollments or progress.
package persist

import (
	"bytes"
	"context"
	"errors"
	"sync"

	"github.com/Hami23p/Learnify/internal/codec"
	"github.com/Hami23p/Learnify/internal/learning"
)

// ErrNotFound is returned by Load* when nothing has been saved yet.
var ErrNotFound = errors.New("no saved data")

// Store loads and saves the two collections independently.
type Store interface {
	LoadUsers(ctx context.Context) ([]*learning.User, error)
	SaveUsers(ctx context.Context, users []*learning.User) error
	LoadCourses(ctx context.Context) ([]*learning.Course, error)
	SaveCourses(ctx context.Context, courses []*learning.Course) error
}

// MemoryStore keeps encoded collections in memory. SaveErr, when set, makes
// every save fail.
type MemoryStore struct {
	mu      sync.Mutex
	users   []byte
	courses []byte
	SaveErr error
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) LoadUsers(_ context.Context) ([]*learning.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.users == nil {
		return nil, ErrNotFound
	}
	return codec.DecodeUsers(bytes.NewReader(s.users))
}

func (s *MemoryStore) SaveUsers(_ context.Context, users []*learning.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	var buf bytes.Buffer
	if err := codec.EncodeUsers(&buf, users); err != nil {
		return err
	}
	s.users = buf.Bytes()
	return nil
}

func (s *MemoryStore) LoadCourses(_ context.Context) ([]*learning.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.courses == nil {
		return nil, ErrNotFound
	}
	return codec.DecodeCourses(bytes.NewReader(s.courses))
}

func (s *MemoryStore) SaveCourses(_ context.Context, courses []*learning.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	var buf bytes.Buffer
	if err := codec.EncodeCourses(&buf, courses); err != nil {
		return err
	}
	s.courses = buf.Bytes()
	return nil
}

// UsersText returns the users file content as last saved.
func (s *MemoryStore) UsersText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return string(s.users)
}

// CoursesText returns the courses file content as last saved.
func (s *MemoryStore) CoursesText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return string(s.courses)
}

// SetUsersText seeds the store with raw users file content.
func (s *MemoryStore) SetUsersText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = []byte(text)
}

// SetCoursesText seeds the store with raw courses file content.
func (s *MemoryStore) SetCoursesText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courses = []byte(text)
}
