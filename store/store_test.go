package store_test

import (
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrLoydHD/mei-aa-p1/builder"
	"github.com/MrLoydHD/mei-aa-p1/core"
	"github.com/MrLoydHD/mei-aa-p1/store"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.ErrorLevel)
	return log
}

func openMemory(t *testing.T) *store.Store {
	t.Helper()
	cfg := store.InMemoryConfig()
	cfg.Logger = quietLogger()
	s, err := store.Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestKey_String(t *testing.T) {
	k := store.Key{Vertices: 12, EdgeProb: 0.125, Seed: 108215}
	assert.Equal(t, "graph/12/125/108215", k.String())
	assert.Equal(t, "graph/5/750/1", store.Key{Vertices: 5, EdgeProb: 0.75, Seed: 1}.String())
}

func TestStore_PutGetRoundTrip(t *testing.T) {
	s := openMemory(t)
	g, err := builder.RandomGraph(25, 0.5, builder.DefaultSeed)
	require.NoError(t, err)

	k := store.Key{Vertices: 25, EdgeProb: 0.5, Seed: builder.DefaultSeed}
	require.NoError(t, s.Put(k, g))

	got, err := s.Get(k)
	require.NoError(t, err)
	assert.Equal(t, g.Vertices(), got.Vertices())
	assert.Equal(t, g.Edges(), got.Edges())
	for _, id := range g.Vertices() {
		want, _ := g.Vertex(id)
		have, err := got.Vertex(id)
		require.NoError(t, err)
		assert.Equal(t, want, have)
	}
}

func TestStore_GetMissing(t *testing.T) {
	s := openMemory(t)
	_, err := s.Get(store.Key{Vertices: 1, EdgeProb: 0.5, Seed: 1})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStore_GetOrBuild(t *testing.T) {
	s := openMemory(t)
	k := store.Key{Vertices: 8, EdgeProb: 0.25, Seed: 3}

	calls := 0
	build := func() (*core.Graph, error) {
		calls++
		return builder.RandomGraph(8, 0.25, 3)
	}

	first, hit, err := s.GetOrBuild(k, build)
	require.NoError(t, err)
	assert.False(t, hit)

	second, hit, err := s.GetOrBuild(k, build)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 1, calls)
	assert.Equal(t, first.Edges(), second.Edges())

	n, err := s.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStore_GetOrBuildPropagatesBuildError(t *testing.T) {
	s := openMemory(t)
	boom := errors.New("boom")
	_, _, err := s.GetOrBuild(store.Key{Vertices: 1}, func() (*core.Graph, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
}

func TestStore_CorruptRecordIsRebuilt(t *testing.T) {
	s := openMemory(t)
	k := store.Key{Vertices: 4, EdgeProb: 1, Seed: 9}
	require.NoError(t, store.PutRaw(s, k, []byte{0, 0, 0, 0, 1, 2, 3}))

	_, err := s.Get(k)
	require.ErrorIs(t, err, store.ErrCorrupt)

	g, hit, err := s.GetOrBuild(k, func() (*core.Graph, error) {
		return builder.BuildGraph(nil, builder.Complete(4))
	})
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 6, g.EdgeCount())

	_, err = s.Get(k)
	assert.NoError(t, err)
}

func TestStore_Persistent(t *testing.T) {
	dir := t.TempDir()
	cfg := store.DefaultConfig(dir)
	cfg.Logger = quietLogger()
	k := store.Key{Vertices: 6, EdgeProb: 0.5, Seed: 1}

	s, err := store.Open(cfg)
	require.NoError(t, err)
	g, err := builder.RandomGraph(6, 0.5, 1)
	require.NoError(t, err)
	require.NoError(t, s.Put(k, g))
	require.NoError(t, s.Close())

	s, err = store.Open(cfg)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Get(k)
	require.NoError(t, err)
	assert.Equal(t, g.Edges(), got.Edges())
}

func TestStore_Closed(t *testing.T) {
	cfg := store.InMemoryConfig()
	cfg.Logger = quietLogger()
	s, err := store.Open(cfg)
	require.NoError(t, err)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	_, err = s.Get(store.Key{})
	assert.ErrorIs(t, err, store.ErrClosed)
	assert.ErrorIs(t, s.Put(store.Key{}, core.NewGraph()), store.ErrClosed)
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := store.Open(store.Config{})
	assert.Error(t, err)
}
