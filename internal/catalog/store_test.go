package catalog_test

import (
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelmatch/internal/catalog"
	"hotelmatch/internal/domain"
)

func hotel(id int64, emb []float64) domain.Hotel {
	return domain.Hotel{ID: id, Name: "h", Lat: 1, Lng: 2, Embedding: emb}
}

func TestNew_KeepsValidRecordsInOrder(t *testing.T) {
	s, err := catalog.New([]domain.Hotel{
		hotel(1, []float64{1, 0}),
		hotel(2, []float64{0, 1}),
	}, zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())
	assert.Equal(t, int64(1), s.Hotels()[0].ID)
	assert.Equal(t, int64(2), s.Hotels()[1].ID)
	assert.Equal(t, 2, s.Dim())
}

func TestNew_ExcludesDimensionMismatch(t *testing.T) {
	s, err := catalog.New([]domain.Hotel{
		hotel(1, []float64{1, 0}),
		hotel(2, []float64{1, 0, 0}),
	}, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())
}

func TestNew_ExcludesMissingEmbeddingAndBadCoords(t *testing.T) {
	bad := hotel(2, []float64{1, 0})
	bad.Lat = math.NaN()
	s, err := catalog.New([]domain.Hotel{
		hotel(1, []float64{1, 0}),
		hotel(3, nil),
		bad,
	}, zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())
	assert.Equal(t, int64(1), s.Hotels()[0].ID)
}

func TestNew_AllRecordsInvalidFails(t *testing.T) {
	_, err := catalog.New([]domain.Hotel{hotel(1, nil)}, zerolog.Nop())
	assert.ErrorIs(t, err, domain.ErrDataIntegrity)
}

func TestNew_EmptyCatalogIsAllowed(t *testing.T) {
	s, err := catalog.New(nil, zerolog.Nop())
	require.NoError(t, err)
	assert.Zero(t, s.Len())
	assert.Zero(t, s.Dim())
}
