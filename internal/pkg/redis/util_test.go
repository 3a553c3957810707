package redis

import (
	"Islet/internal/api/config"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	require.NoError(t, InitRedis(config.RedisConfig{Addr: mr.Addr()}))
	return mr
}

func TestSetAndGetValue(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetWithExpiration(ctx, "k1", "v1", time.Minute))

	val, err := GetValue(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, "v1", val)

	// 不存在的键返回空串而不是错误
	val, err = GetValue(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, val)
}

func TestSetWithExpirationExpires(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetWithExpiration(ctx, "k1", "v1", time.Second))
	mr.FastForward(2 * time.Second)

	val, err := GetValue(ctx, "k1")
	require.NoError(t, err)
	assert.Empty(t, val)
}

func TestTryLockMutualExclusion(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	ok, err := TryLock(ctx, "lock:test", "owner-a", time.Minute, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	// 持锁期间第二个持有者拿不到
	ok, err = TryLock(ctx, "lock:test", "owner-b", time.Minute, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	// 非持有者释放无效
	UnLock(ctx, "lock:test", "owner-b")
	ok, err = TryLock(ctx, "lock:test", "owner-c", time.Minute, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	// 持有者释放后可再次加锁
	UnLock(ctx, "lock:test", "owner-a")
	ok, err = TryLock(ctx, "lock:test", "owner-c", time.Minute, 1)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDeleteKey(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetWithExpiration(ctx, "k1", "v1", time.Minute))
	require.NoError(t, DeleteKey(ctx, "k1"))

	val, err := GetValue(ctx, "k1")
	require.NoError(t, err)
	assert.Empty(t, val)
}
