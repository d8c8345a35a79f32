package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/movie-explorer/internal/model"
)

type fakeMovieAPI struct {
	*fakeSearcher
	*fakeDetails
}

func newFakeMovieAPI() *fakeMovieAPI {
	return &fakeMovieAPI{
		fakeSearcher: newFakeSearcher(),
		fakeDetails:  &fakeDetails{details: map[string]*model.MovieDetails{}},
	}
}

func TestSessionRegistry_GetOrCreate(t *testing.T) {
	registry := NewSessionRegistry(newFakeMovieAPI(), 10, time.Hour)

	_, ok := registry.Get("s1")
	assert.False(t, ok)

	sess, created := registry.GetOrCreate("s1")
	assert.True(t, created)
	require.NotNil(t, sess.Search)
	require.NotNil(t, sess.Detail)
	assert.Equal(t, "s1", sess.ID)

	again, created := registry.GetOrCreate("s1")
	assert.False(t, created)
	assert.Same(t, sess, again)

	other, created := registry.GetOrCreate("s2")
	assert.True(t, created)
	assert.NotSame(t, sess, other)
	assert.Equal(t, 2, registry.Len())
}

func TestSessionRegistry_FlowsAreIsolated(t *testing.T) {
	api := newFakeMovieAPI()
	api.set("marvel", 1, 47, "a")
	registry := NewSessionRegistry(api, 10, time.Hour)

	s1, _ := registry.GetOrCreate("s1")
	s2, _ := registry.GetOrCreate("s2")

	_, err := s1.Search.Submit(context.Background(), "marvel")
	require.NoError(t, err)

	assert.Equal(t, StatusSuccess, s1.Search.State().Status)
	assert.Equal(t, StatusIdle, s2.Search.State().Status)
}

func TestSessionRegistry_PurgeExpired(t *testing.T) {
	registry := NewSessionRegistry(newFakeMovieAPI(), 10, 10*time.Millisecond)
	registry.GetOrCreate("s1")
	registry.GetOrCreate("s2")

	time.Sleep(30 * time.Millisecond)
	registry.GetOrCreate("s3")

	assert.Equal(t, 2, registry.PurgeExpired())
	assert.Equal(t, 1, registry.Len())

	_, ok := registry.Get("s1")
	assert.False(t, ok)
}

func TestCleanupService_RunCleanup(t *testing.T) {
	registry := NewSessionRegistry(newFakeMovieAPI(), 10, 10*time.Millisecond)
	registry.GetOrCreate("s1")
	time.Sleep(30 * time.Millisecond)

	svc := NewCleanupService(registry, time.Hour)
	assert.Equal(t, 1, svc.runCleanup())
	assert.Equal(t, 0, registry.Len())

	svc.Start()
	svc.Stop()
	svc.Stop()
}
