package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"formquiz-service/internal/domain"
)

// Store is the persistence collaborator: whole JSON records addressed by string keys.
// Get returns domain.ErrNotFound for missing keys.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// AttemptLog keeps per-quiz attempt counters and the append-only attempt log.
type AttemptLog struct {
	store Store
	locks keyedMutex
}

func NewAttemptLog(store Store) *AttemptLog {
	return &AttemptLog{store: store}
}

// Count returns how many attempts the participant has submitted for the quiz.
func (l *AttemptLog) Count(ctx context.Context, quizID, participantID string) (int, error) {
	var count int
	if err := getJSON(ctx, l.store, counterKey(quizID, participantID), &count); err != nil {
		return 0, fmt.Errorf("load attempt count: %w", err)
	}
	return count, nil
}

// List returns every recorded attempt of a quiz in submission order.
func (l *AttemptLog) List(ctx context.Context, quizID string) ([]domain.QuizAttempt, error) {
	attempts := []domain.QuizAttempt{}
	if err := getJSON(ctx, l.store, logKey(quizID), &attempts); err != nil {
		return nil, fmt.Errorf("load attempts: %w", err)
	}
	return attempts, nil
}

// Record increments the participant's counter and appends the attempt to the quiz log.
func (l *AttemptLog) Record(ctx context.Context, attempt domain.QuizAttempt) error {
	ck := counterKey(attempt.QuizID, attempt.ParticipantID)
	unlock := l.locks.lock(ck)
	var count int
	err := getJSON(ctx, l.store, ck, &count)
	if err == nil {
		err = setJSON(ctx, l.store, ck, count+1)
	}
	unlock()
	if err != nil {
		return fmt.Errorf("update attempt count: %w", err)
	}

	lk := logKey(attempt.QuizID)
	unlock = l.locks.lock(lk)
	defer unlock()
	attempts := []domain.QuizAttempt{}
	if err := getJSON(ctx, l.store, lk, &attempts); err != nil {
		return fmt.Errorf("load attempts: %w", err)
	}
	attempts = append(attempts, attempt)
	if err := setJSON(ctx, l.store, lk, attempts); err != nil {
		return fmt.Errorf("append attempt: %w", err)
	}
	return nil
}

func counterKey(quizID, participantID string) string {
	if participantID == "" {
		participantID = "anonymous"
	}
	return "quiz:" + quizID + ":attempt-count:" + participantID
}

func logKey(quizID string) string {
	return "quiz:" + quizID + ":attempts"
}

// getJSON leaves dst untouched when the key does not exist.
func getJSON(ctx context.Context, store Store, key string, dst any) error {
	raw, err := store.Get(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

func setJSON(ctx context.Context, store Store, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, raw)
}

// keyedMutex serializes read-modify-write cycles on the same key within the process.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*sync.Mutex)
	}
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
