package persist

import (
	"bytes"
	"context"
	"errors"

	"github.com/Hami23p/Learnify/internal/codec"
	"github.com/Hami23p/Learnify/internal/learning"
	"github.com/Hami23p/Learnify/internal/platform/cache"
)

const (
	usersKey   = "users"
	coursesKey = "courses"
)

// KV is the subset of the cache client the redis store needs.
type KV interface {
	Get(ctx context.Context, name string) ([]byte, error)
	Set(ctx context.Context, name string, value []byte) error
}

// RedisStore keeps each collection as flat-file text under one key.
type RedisStore struct {
	kv KV
}

// NewRedisStore creates a store on top of kv, usually a *cache.Cache.
func NewRedisStore(kv KV) *RedisStore {
	return &RedisStore{kv: kv}
}

func (s *RedisStore) LoadUsers(ctx context.Context) ([]*learning.User, error) {
	b, err := s.get(ctx, usersKey)
	if err != nil {
		return nil, err
	}
	return codec.DecodeUsers(bytes.NewReader(b))
}

func (s *RedisStore) SaveUsers(ctx context.Context, users []*learning.User) error {
	var buf bytes.Buffer
	if err := codec.EncodeUsers(&buf, users); err != nil {
		return err
	}
	return s.kv.Set(ctx, usersKey, buf.Bytes())
}

func (s *RedisStore) LoadCourses(ctx context.Context) ([]*learning.Course, error) {
	b, err := s.get(ctx, coursesKey)
	if err != nil {
		return nil, err
	}
	return codec.DecodeCourses(bytes.NewReader(b))
}

func (s *RedisStore) SaveCourses(ctx context.Context, courses []*learning.Course) error {
	var buf bytes.Buffer
	if err := codec.EncodeCourses(&buf, courses); err != nil {
		return err
	}
	return s.kv.Set(ctx, coursesKey, buf.Bytes())
}

func (s *RedisStore) get(ctx context.Context, name string) ([]byte, error) {
	b, err := s.kv.Get(ctx, name)
	if errors.Is(err, cache.ErrMiss) {
		return nil, ErrNotFound
	}
	return b, err
}
