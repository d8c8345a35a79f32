package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/movie-explorer/internal/model"
)

var testMovies = []model.Movie{
	{ID: "tt0371746", Title: "Iron Man", Year: "2008", Type: "movie", Poster: "https://example.com/ironman.jpg"},
	{ID: "tt0848228", Title: "The Avengers", Year: "2012", Type: "movie", Poster: model.PosterNA},
	{ID: "tt2395427", Title: "Agents of S.H.I.E.L.D.", Year: "2013–2020", Type: "series", Poster: ""},
}

func TestEncodeDecodeMovies_RoundTrip(t *testing.T) {
	raw, err := EncodeMovies(testMovies)
	require.NoError(t, err)

	got, err := DecodeMovies(raw)
	require.NoError(t, err)
	assert.Equal(t, testMovies, got)
}

func TestEncodeMovies_NilIsEmptyArray(t *testing.T) {
	raw, err := EncodeMovies(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestEncodeMovies_ProviderFieldNames(t *testing.T) {
	raw, err := EncodeMovies(testMovies[:1])
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"imdbID":"tt0371746","Title":"Iron Man","Year":"2008","Type":"movie","Poster":"https://example.com/ironman.jpg"}]`,
		string(raw))
}

func TestDecodeMovies(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{name: "empty value", raw: "", want: 0},
		{name: "empty array", raw: "[]", want: 0},
		{name: "null", raw: "null", want: 0},
		{name: "truncated json", raw: `[{"imdbID":"tt0371746","Title":"Iron`, wantErr: true},
		{name: "not an array", raw: `{"imdbID":"tt0371746"}`, wantErr: true},
		{name: "two movies", raw: `[{"imdbID":"a","Title":"A"},{"imdbID":"b","Title":"B"}]`, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeMovies([]byte(tt.raw))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestFavoriteRepository_LoadAbsentSlot(t *testing.T) {
	repo := NewFavoriteRepository(NewMemorySlotStore(), "")
	assert.Equal(t, DefaultFavoritesKey, repo.Key())

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFavoriteRepository_SaveThenLoad(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySlotStore()
	repo := NewFavoriteRepository(store, "favs")

	require.NoError(t, repo.Save(ctx, testMovies))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, testMovies, got)

	raw, err := store.Load(ctx, "favs")
	require.NoError(t, err)
	want, _ := EncodeMovies(testMovies)
	assert.Equal(t, want, raw)
}

func TestFavoriteRepository_LoadCorrupted(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySlotStore()
	require.NoError(t, store.Save(ctx, DefaultFavoritesKey, []byte(`[{"imdbID":`)))

	_, err := NewFavoriteRepository(store, "").Load(ctx)
	assert.Error(t, err)
}

type brokenSlotStore struct{}

func (brokenSlotStore) Load(context.Context, string) ([]byte, error) {
	return nil, errors.New("connection refused")
}

func (brokenSlotStore) Save(context.Context, string, []byte) error {
	return errors.New("connection refused")
}

func TestFavoriteRepository_StoreErrors(t *testing.T) {
	repo := NewFavoriteRepository(brokenSlotStore{}, "")

	_, err := repo.Load(context.Background())
	assert.ErrorContains(t, err, "connection refused")

	err = repo.Save(context.Background(), testMovies)
	assert.ErrorContains(t, err, "connection refused")
}

func TestMemorySlotStore_CopiesValues(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySlotStore()

	_, err := store.Load(ctx, "missing")
	assert.ErrorIs(t, err, ErrSlotNotFound)

	value := []byte("abc")
	require.NoError(t, store.Save(ctx, "k", value))
	value[0] = 'x'

	got, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}
