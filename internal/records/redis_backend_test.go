package records

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/crowdfund/internal/errors"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	require.NoError(t, client.Ping(context.Background()).Err())

	return client, mr
}

func TestRedisBackend(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer func() { _ = client.Close() }()

	ctx := context.Background()
	backend := NewRedisBackend(client, "")

	_, err := backend.Read(ctx, KindProjects)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, backend.Write(ctx, KindProjects, []byte(`[]`)))

	stored, err := mr.Get(DefaultRedisKeyPrefix + "projects")
	require.NoError(t, err)
	assert.Equal(t, `[]`, stored)
	assert.Zero(t, mr.TTL(DefaultRedisKeyPrefix+"projects"))

	data, err := backend.Read(ctx, KindProjects)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))
}

func TestRedisBackend_StoreIntegration(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer func() { _ = client.Close() }()

	ctx := context.Background()
	store := NewStore(NewRedisBackend(client, "test:"), testLogger())

	projects := sampleProjects()
	require.NoError(t, store.SaveProjects(ctx, projects))
	assert.True(t, mr.Exists("test:projects"))
	assert.Equal(t, projects, store.LoadProjects(ctx))
}

func TestRedisBackend_Unavailable(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer func() { _ = client.Close() }()
	mr.Close()

	ctx := context.Background()
	store := NewStore(NewRedisBackend(client, ""), testLogger())

	assert.Empty(t, store.LoadUsers(ctx))
	err := store.SaveUsers(ctx, nil)
	assert.ErrorIs(t, err, apperrors.ErrPersistence)
}
