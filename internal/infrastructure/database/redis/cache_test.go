package redis

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type snapshot struct {
	Provinces int    `json:"provinces"`
	Source    string `json:"source"`
}

func newMockCache(t *testing.T) (*Cache, redismock.ClientMock) {
	t.Helper()
	db, mock := redismock.NewClientMock()
	client := NewClientFromRedis(db, nil)
	return NewCache(client, "geoinsight", time.Minute), mock
}

func TestCache_SetAndGet(t *testing.T) {
	cache, mock := newMockCache(t)
	value := snapshot{Provinces: 38, Source: "gazetteer.json"}

	mock.ExpectSet("geoinsight:boundary", []byte(`{"provinces":38,"source":"gazetteer.json"}`), time.Minute).SetVal("OK")
	require.NoError(t, cache.Set(context.Background(), "boundary", value, 0))

	mock.ExpectGet("geoinsight:boundary").SetVal(`{"provinces":38,"source":"gazetteer.json"}`)
	var got snapshot
	hit, err := cache.Get(context.Background(), "boundary", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, value, got)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_MissIsNotError(t *testing.T) {
	cache, mock := newMockCache(t)

	mock.ExpectGet("geoinsight:boundary").RedisNil()
	var got snapshot
	hit, err := cache.Get(context.Background(), "boundary", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCache_CorruptEntryBehavesLikeMiss(t *testing.T) {
	cache, mock := newMockCache(t)

	mock.ExpectGet("geoinsight:boundary").SetVal("{not json")
	mock.ExpectDel("geoinsight:boundary").SetVal(1)

	var got snapshot
	hit, err := cache.Get(context.Background(), "boundary", &got)
	require.NoError(t, err)
	assert.False(t, hit)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_Delete(t *testing.T) {
	cache, mock := newMockCache(t)

	mock.ExpectDel("geoinsight:boundary").SetVal(0)
	assert.NoError(t, cache.Delete(context.Background(), "boundary"))
}
