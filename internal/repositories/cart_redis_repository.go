package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bookstore/internal/models"

	"github.com/redis/go-redis/v9"
)

// cartTTL bounds how long an abandoned cart survives. Every save
// refreshes the window.
const cartTTL = 24 * time.Hour

// RedisCartRepository stores session carts as JSON blobs in Redis
// under "cart:<session id>".
type RedisCartRepository struct {
	client *redis.Client
}

// NewRedisCartRepository creates a new instance of RedisCartRepository.
func NewRedisCartRepository(client *redis.Client) *RedisCartRepository {
	return &RedisCartRepository{
		client: client,
	}
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

// Get returns the cart for a session, or an empty cart when the key
// is missing or expired.
func (r *RedisCartRepository) Get(ctx context.Context, sessionID string) (*models.Cart, error) {
	data, err := r.client.Get(ctx, cartKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return &models.Cart{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cart for session %s: %w", sessionID, err)
	}

	var cart models.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("failed to decode cart for session %s: %w", sessionID, err)
	}
	return &cart, nil
}

// Save replaces the stored cart and refreshes its TTL.
func (r *RedisCartRepository) Save(ctx context.Context, sessionID string, cart *models.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart for session %s: %w", sessionID, err)
	}
	if err := r.client.Set(ctx, cartKey(sessionID), data, cartTTL).Err(); err != nil {
		return fmt.Errorf("failed to save cart for session %s: %w", sessionID, err)
	}
	return nil
}

// Clear removes the stored cart. Clearing an absent cart is not an
// error.
func (r *RedisCartRepository) Clear(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear cart for session %s: %w", sessionID, err)
	}
	return nil
}
