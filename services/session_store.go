package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"clinic-portal/config"
	"clinic-portal/models"

	"github.com/redis/go-redis/v9"
)

// SessionStore keeps the backend token pair and user identity behind a portal
// session ID. Redis-backed when redis is up so sessions survive restarts;
// otherwise an in-process map, same as running without cache.
type SessionStore interface {
	Save(ctx context.Context, session models.Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (models.Session, bool)
	Delete(ctx context.Context, id string) error
}

func NewSessionStore() SessionStore {
	if models.RedisClient != nil {
		return &redisSessionStore{client: models.RedisClient}
	}
	config.Log.Info("Using in-memory session store")
	return newMemorySessionStore()
}

type redisSessionStore struct {
	client *redis.Client
}

func sessionKey(id string) string {
	return "session:" + id
}

func (s *redisSessionStore) Save(ctx context.Context, session models.Session, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(session.ID), payload, ttl).Err()
}

func (s *redisSessionStore) Get(ctx context.Context, id string) (models.Session, bool) {
	raw, err := s.client.Get(ctx, sessionKey(id)).Result()
	if err != nil {
		return models.Session{}, false
	}
	var session models.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return models.Session{}, false
	}
	return session, true
}

func (s *redisSessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}

type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]memorySession
}

type memorySession struct {
	session   models.Session
	expiresAt time.Time
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: make(map[string]memorySession)}
}

func (s *memorySessionStore) Save(_ context.Context, session models.Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = memorySession{session: session, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *memorySessionStore) Get(_ context.Context, id string) (models.Session, bool) {
	s.mu.RLock()
	entry, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return models.Session{}, false
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return models.Session{}, false
	}
	return entry.session, true
}

func (s *memorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
