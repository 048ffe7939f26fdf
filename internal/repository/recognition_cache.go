package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"receiptchain/internal/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const recognitionKeyPrefix = "recognition:"

// RecognitionCache stores extraction results keyed by image hash and type.
type RecognitionCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRecognitionCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RecognitionCache {
	return &RecognitionCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func CacheKey(imageHash string, docType models.DocumentType) string {
	return recognitionKeyPrefix + imageHash + ":" + string(docType)
}

// Get returns (nil, nil) on a miss.
func (c *RecognitionCache) Get(ctx context.Context, imageHash string, docType models.DocumentType) (*models.RecognitionResult, error) {
	data, err := c.client.Get(ctx, CacheKey(imageHash, docType)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var result models.RecognitionResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decode cached result: %w", err)
	}
	return &result, nil
}

func (c *RecognitionCache) Set(ctx context.Context, imageHash string, docType models.DocumentType, result *models.RecognitionResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	if err := c.client.Set(ctx, CacheKey(imageHash, docType), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
