package storage

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMemDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	require.NoError(t, err, "open in-memory db")
	t.Cleanup(func() { db.Close() })
	return db
}

func TestPayloadRoundTrip(t *testing.T) {
	db := openMemDB(t)
	ctx := context.Background()

	body := []byte(`{"match_id":"1-abc","rounds":[{"round_stats":{"Map":"de_mirage"}}]}`)
	require.NoError(t, db.PutPayload(ctx, "/matches/1-abc/stats", body))

	got, ok, err := db.GetPayload(ctx, "/matches/1-abc/stats")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, body, got)
}

func TestGetPayload_Miss(t *testing.T) {
	db := openMemDB(t)

	got, ok, err := db.GetPayload(context.Background(), "/matches/nope")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestPutPayload_Upsert(t *testing.T) {
	db := openMemDB(t)
	ctx := context.Background()

	require.NoError(t, db.PutPayload(ctx, "k", []byte("first")))
	require.NoError(t, db.PutPayload(ctx, "k", []byte("second")))

	got, ok, err := db.GetPayload(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "second", string(got))

	list, err := db.ListPayloads(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestListAndStats(t *testing.T) {
	db := openMemDB(t)
	ctx := context.Background()

	big := bytes.Repeat([]byte(`{"Kills":"21","Deaths":"14"}`), 200)
	require.NoError(t, db.PutPayload(ctx, "/matches/a", big))
	require.NoError(t, db.PutPayload(ctx, "/matches/b", []byte("{}")))

	list, err := db.ListPayloads(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	sizes := map[string]PayloadInfo{}
	for _, p := range list {
		sizes[p.Key] = p
	}
	assert.Equal(t, len(big), sizes["/matches/a"].RawSize)
	assert.Less(t, sizes["/matches/a"].StoredSize, len(big), "repetitive body should compress")
	assert.False(t, sizes["/matches/b"].FetchedAt.IsZero())

	st, err := db.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, st.Entries)
	assert.Equal(t, int64(len(big)+2), st.RawBytes)
}

func TestStats_Empty(t *testing.T) {
	db := openMemDB(t)
	st, err := db.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, CacheStats{}, st)
}
