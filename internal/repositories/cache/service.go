package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"solsight/internal/models"

	"github.com/redis/go-redis/v9"
)

type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Base operations
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

func (s *CacheService) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

func (s *CacheService) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *CacheService) PoolStats() *redis.PoolStats {
	return s.client.PoolStats()
}

func (s *CacheService) Close() error {
	return s.client.Close()
}

// Key generation
func (s *CacheService) GenerateKey(entityType, keyType string, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entityType, keyType, value)
}

// Price caching. Prices go stale fast, so the TTL is fixed and short.
func (s *CacheService) CachePrice(ctx context.Context, quote *models.PriceQuote) error {
	key := s.GenerateKey("price", "symbol", quote.Symbol)
	return s.SetWithTTL(ctx, key, quote, 15*time.Second)
}

func (s *CacheService) GetPrice(ctx context.Context, symbol string) (*models.PriceQuote, bool) {
	var quote models.PriceQuote
	found, err := s.Get(ctx, s.GenerateKey("price", "symbol", symbol), &quote)
	if err != nil || !found {
		return nil, false
	}
	return &quote, true
}

// Token metadata caching. Metadata is near-immutable; cache for the default
// TTL.
func (s *CacheService) CacheTokenMetadata(ctx context.Context, meta *models.TokenMetadata) error {
	key := s.GenerateKey("token", "mint", meta.Mint)
	return s.Set(ctx, key, meta)
}

func (s *CacheService) GetTokenMetadata(ctx context.Context, mint string) (*models.TokenMetadata, bool) {
	var meta models.TokenMetadata
	found, err := s.Get(ctx, s.GenerateKey("token", "mint", mint), &meta)
	if err != nil || !found {
		return nil, false
	}
	return &meta, true
}
