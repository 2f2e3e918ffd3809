package repositories_test

import (
	"context"
	"testing"
	"time"

	"bookstore/internal/models"
	"bookstore/internal/repositories"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func setupCartRepo(t *testing.T) (*repositories.RedisCartRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return repositories.NewRedisCartRepository(client), mr
}

func TestRedisCartRepository_RoundTrip(t *testing.T) {
	repo, _ := setupCartRepo(t)
	ctx := context.Background()

	cart := &models.Cart{Items: []models.CartItem{
		{BookID: "book-1", Quantity: 2},
		{BookID: "book-2", Quantity: 1},
	}}
	assert.NoError(t, repo.Save(ctx, "session-1", cart))

	fetched, err := repo.Get(ctx, "session-1")
	assert.NoError(t, err)
	assert.Equal(t, cart.Items, fetched.Items)
}

func TestRedisCartRepository_MissingCartIsEmpty(t *testing.T) {
	repo, _ := setupCartRepo(t)

	cart, err := repo.Get(context.Background(), "never-seen")
	assert.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestRedisCartRepository_Clear(t *testing.T) {
	repo, _ := setupCartRepo(t)
	ctx := context.Background()

	assert.NoError(t, repo.Save(ctx, "session-1", &models.Cart{Items: []models.CartItem{{BookID: "book-1", Quantity: 1}}}))
	assert.NoError(t, repo.Clear(ctx, "session-1"))

	cart, err := repo.Get(ctx, "session-1")
	assert.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	// Clearing again is harmless.
	assert.NoError(t, repo.Clear(ctx, "session-1"))
}

func TestRedisCartRepository_CartExpires(t *testing.T) {
	repo, mr := setupCartRepo(t)
	ctx := context.Background()

	assert.NoError(t, repo.Save(ctx, "session-1", &models.Cart{Items: []models.CartItem{{BookID: "book-1", Quantity: 1}}}))

	// An abandoned cart is gone after its TTL.
	mr.FastForward(25 * time.Hour)

	cart, err := repo.Get(ctx, "session-1")
	assert.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestRedisCartRepository_SessionsAreIsolated(t *testing.T) {
	repo, _ := setupCartRepo(t)
	ctx := context.Background()

	assert.NoError(t, repo.Save(ctx, "session-1", &models.Cart{Items: []models.CartItem{{BookID: "book-1", Quantity: 1}}}))
	assert.NoError(t, repo.Save(ctx, "session-2", &models.Cart{Items: []models.CartItem{{BookID: "book-2", Quantity: 9}}}))

	cart, err := repo.Get(ctx, "session-1")
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "book-1", cart.Items[0].BookID)
}
