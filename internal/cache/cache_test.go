package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizreview/internal/config"
	"bizreview/internal/model"
)

func TestNoop(t *testing.T) {
	ctx := context.Background()
	var c BusinessCache = Noop{}

	require.NoError(t, c.Set(ctx, &model.Business{ID: 1}))
	b, ok, err := c.Get(ctx, 1)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, b)
	assert.NoError(t, c.Delete(ctx, 1))
}

func TestBusinessKey(t *testing.T) {
	assert.Equal(t, "bizreview:business:42", businessKey(42))
}

func TestNewRedis_RequiresAddress(t *testing.T) {
	c, err := NewRedis(context.Background(), config.RedisConfig{})
	assert.Error(t, err)
	assert.Nil(t, c)
}

func TestRedisCache_UnreachableServerSurfacesErrors(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	c := newRedisCache(client, 0)
	defer c.Close()

	assert.Equal(t, time.Minute, c.ttl)

	ctx := context.Background()
	_, ok, err := c.Get(ctx, 1)
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Error(t, c.Set(ctx, &model.Business{ID: 1}))
	assert.Error(t, c.Delete(ctx, 1))
}
