package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"maintenance-console/internal/repositories"
	"maintenance-console/pkg/constants"
)

// FlashServiceInterface stores one-shot messages for the next page a session
// renders, the server side counterpart of an alert dialog after a redirect.
type FlashServiceInterface interface {
	Push(ctx context.Context, sessionID, message string) error
	Pop(ctx context.Context, sessionID string) ([]string, error)
}

type FlashService struct {
	cache  repositories.CacheRepositoryInterface
	ttl    time.Duration
	logger *zap.Logger
}

func NewFlashService(cache repositories.CacheRepositoryInterface, ttl time.Duration, logger *zap.Logger) FlashServiceInterface {
	return &FlashService{cache: cache, ttl: ttl, logger: logger}
}

func (s *FlashService) Push(ctx context.Context, sessionID, message string) error {
	if sessionID == "" || message == "" {
		return nil
	}
	key := fmt.Sprintf(constants.CacheKeyFlash, sessionID)

	messages, err := s.read(ctx, key)
	if err != nil {
		return err
	}
	messages = append(messages, message)

	raw, err := json.Marshal(messages)
	if err != nil {
		return err
	}
	if err := s.cache.Set(ctx, key, raw, s.ttl); err != nil {
		s.logger.Error("flash: store failed", zap.String("session_id", sessionID), zap.Error(err))
		return err
	}
	return nil
}

// Pop returns the pending messages of a session and forgets them.
func (s *FlashService) Pop(ctx context.Context, sessionID string) ([]string, error) {
	if sessionID == "" {
		return nil, nil
	}
	key := fmt.Sprintf(constants.CacheKeyFlash, sessionID)

	messages, err := s.read(ctx, key)
	if err != nil || len(messages) == 0 {
		return nil, err
	}
	if err := s.cache.Del(ctx, key); err != nil {
		s.logger.Warn("flash: delete failed", zap.String("session_id", sessionID), zap.Error(err))
	}
	return messages, nil
}

func (s *FlashService) read(ctx context.Context, key string) ([]string, error) {
	raw, err := s.cache.Get(ctx, key)
	if errors.Is(err, repositories.ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var messages []string
	if err := json.Unmarshal([]byte(raw), &messages); err != nil {
		s.logger.Warn("flash: dropping unreadable entry", zap.String("key", key), zap.Error(err))
		return nil, nil
	}
	return messages, nil
}
