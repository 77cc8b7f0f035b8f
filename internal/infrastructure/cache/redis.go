package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient wraps the go-redis client. It backs the token revocation
// store and the public-endpoint rate limiter; it is not a response cache.
type RedisClient struct {
	Client *redis.Client
}

func NewRedisClient(host, password string, db int) *RedisClient {
	return &RedisClient{
		Client: redis.NewClient(&redis.Options{
			Addr:         host,
			Password:     password,
			DB:           db,
			PoolSize:     10,
			MinIdleConns: 5,
			MaxRetries:   3,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		}),
	}
}

func (r *RedisClient) Connect(ctx context.Context) error {
	if err := r.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisClient) HealthCheck(ctx context.Context) error {
	if r.Client == nil {
		return fmt.Errorf("redis client is not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := r.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	return nil
}

func (r *RedisClient) Close() error {
	if r.Client != nil {
		return r.Client.Close()
	}
	return nil
}

func revocationKey(userID string) string {
	return "auth:revoked:" + userID
}

// RevokeTokens marks every token issued to the user before now as dead.
// The key only needs to outlive the longest-lived token, hence the TTL.
func (r *RedisClient) RevokeTokens(ctx context.Context, userID string, ttl time.Duration) error {
	return r.Client.Set(ctx, revocationKey(userID), time.Now().Unix(), ttl).Err()
}

// TokensRevokedAt returns the revocation cutoff for the user, or the zero
// time when the user has never logged out.
func (r *RedisClient) TokensRevokedAt(ctx context.Context, userID string) (time.Time, error) {
	val, err := r.Client.Get(ctx, revocationKey(userID)).Result()
	if err == redis.Nil {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("get revocation cutoff: %w", err)
	}

	unix, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse revocation cutoff: %w", err)
	}

	return time.Unix(unix, 0), nil
}

// IncrWindow increments a fixed-window counter and returns the new count.
// The window TTL is set when the counter is created.
func (r *RedisClient) IncrWindow(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := r.Client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("rate counter: %w", err)
	}
	return incr.Val(), nil
}
