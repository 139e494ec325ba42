package worldmap

import (
	"testing"

	"planes_info/internal/catalog"
	"planes_info/internal/dataset"
	"planes_info/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepository(t *testing.T) *catalog.Repository {
	records, err := dataset.Default()
	require.NoError(t, err)

	repo, err := catalog.New(records)
	require.NoError(t, err)
	return repo
}

func TestBuild_All(t *testing.T) {
	repo := setupRepository(t)

	v := Build(repo, "all")
	assert.Equal(t, "all", v.Type)
	assert.Equal(t, DefaultZoom, v.Zoom)
	assert.Equal(t, DefaultCenter, v.Center)
	require.Len(t, v.Markers, repo.Len())
	assert.Len(t, v.Legend, 4)
	assert.Len(t, v.Counts, 5)

	first := v.Markers[0]
	assert.Equal(t, "boeing-747", first.ID)
	assert.Equal(t, "#3b82f6", first.Color)
	assert.InDelta(t, 47.6062, first.Lat, 1e-9)
	assert.InDelta(t, -122.3321, first.Lon, 1e-9)
	assert.Equal(t, 988.0, first.MaxSpeed)

	require.NotNil(t, v.Bounds)
	assert.InDelta(t, 32.0809, v.Bounds.South, 1e-6)
	assert.InDelta(t, 51.5074, v.Bounds.North, 1e-6)
	assert.InDelta(t, -122.3321, v.Bounds.West, 1e-6)
	assert.InDelta(t, 5.3698, v.Bounds.East, 1e-6)
}

func TestBuild_TypeFilter(t *testing.T) {
	repo := setupRepository(t)

	v := Build(repo, "helicopter")
	require.Len(t, v.Markers, 1)
	assert.Equal(t, "ah-64-apache", v.Markers[0].ID)
	assert.Equal(t, "#8b5cf6", v.Markers[0].Color)

	require.NotNil(t, v.Bounds)
	assert.InDelta(t, 33.749, v.Bounds.South, 1e-6)
	assert.InDelta(t, 33.749, v.Bounds.North, 1e-6)
}

func TestBuild_UnknownTypeShowsAll(t *testing.T) {
	repo := setupRepository(t)

	v := Build(repo, "blimp")
	assert.Equal(t, "all", v.Type)
	assert.Len(t, v.Markers, repo.Len())
}

func TestBoundsOf_Empty(t *testing.T) {
	assert.Nil(t, BoundsOf(nil))
}

func TestTypeColor(t *testing.T) {
	assert.Equal(t, "#ef4444", TypeColor(models.TypeMilitary))
	assert.Equal(t, "#10b981", TypeColor(models.TypePrivate))
	assert.Equal(t, "#6b7280", TypeColor("blimp"))
}

func TestSites(t *testing.T) {
	repo := setupRepository(t)

	sites := Sites(Build(repo, "all").Markers)

	byCount := make(map[int][]string)
	for _, s := range sites {
		var names []string
		for _, m := range s.Markers {
			names = append(names, m.ID)
		}
		byCount[len(s.Markers)] = append(byCount[len(s.Markers)], names...)
	}

	// Atlanta hosts three records, Seattle two
	assert.Equal(t, []string{"f-22-raptor", "ah-64-apache", "f-35-lightning"}, byCount[3])
	assert.Equal(t, []string{"boeing-747", "boeing-777"}, byCount[2])
	assert.Len(t, sites, 5)
}

func TestNewMarker(t *testing.T) {
	ac := models.Aircraft{
		ID:          "test-jet",
		Name:        "Test Jet",
		Type:        models.TypePrivate,
		Year:        2001,
		Coordinates: models.Coordinates{-33.5, 151.25},
		Specs:       models.Specs{MaxSpeed: 900, Range: 7000},
	}

	m := NewMarker(&ac)
	assert.Equal(t, "#10b981", m.Color)
	assert.Equal(t, -33.5, m.Lat)
	assert.Equal(t, 151.25, m.Lon)
	assert.Equal(t, ac.Coordinates.Latlong(), m.Latlong())
}
