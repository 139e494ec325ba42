package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"planes_info/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validRecord = `{
	"id": "test-jet",
	"name": "Test Jet",
	"manufacturer": "Acme",
	"type": "private",
	"category": "Business Jet",
	"year": 2001,
	"country": "Nowhere",
	"coordinates": [10, 20],
	"image": "/img.jpg",
	"specs": {
		"maxSpeed": 900, "range": 5000, "ceiling": 12000,
		"length": 20, "wingspan": 18, "height": 6, "weight": 20000,
		"engines": 2, "engineType": "Turbofan", "passengers": 8
	},
	"history": "Built for tests.",
	"achievements": ["a", "b"],
	"funFacts": [],
	"variants": ["TJ-1"],
	"operators": ["Nobody"]
}`

func TestDefault(t *testing.T) {
	records, err := Default()
	require.NoError(t, err)
	require.Len(t, records, 8)

	assert.Equal(t, "boeing-747", records[0].ID)
	assert.Equal(t, "f-35-lightning", records[len(records)-1].ID)

	seen := make(map[string]bool)
	for _, r := range records {
		assert.False(t, seen[r.ID], "duplicate id %s", r.ID)
		seen[r.ID] = true
		assert.True(t, r.Type.Valid(), "invalid type for %s", r.ID)
	}
}

func TestDefault_OptionalSpecs(t *testing.T) {
	records, err := Default()
	require.NoError(t, err)

	byID := make(map[string]models.Aircraft)
	for _, r := range records {
		byID[r.ID] = r
	}

	raptor := byID["f-22-raptor"]
	assert.Nil(t, raptor.Specs.Passengers)
	require.NotNil(t, raptor.Specs.Crew)
	assert.Equal(t, 1, *raptor.Specs.Crew)

	jumbo := byID["boeing-747"]
	require.NotNil(t, jumbo.Specs.Passengers)
	assert.Equal(t, 524, *jumbo.Specs.Passengers)
}

func TestDecode_Valid(t *testing.T) {
	records, err := Decode(strings.NewReader("[" + validRecord + "]"))
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "test-jet", r.ID)
	assert.Equal(t, models.TypePrivate, r.Type)
	assert.Equal(t, 900.0, r.Specs.MaxSpeed)
	assert.Equal(t, 2, r.Specs.Engines)
	assert.Nil(t, r.Specs.Crew)
	assert.Equal(t, []string{"a", "b"}, r.Achievements)
}

func TestDecode_MissingSpecField(t *testing.T) {
	broken := strings.Replace(validRecord, `"weight": 20000,`, "", 1)

	_, err := Decode(strings.NewReader("[" + broken + "]"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedRecord)
	assert.Contains(t, err.Error(), "specs.weight")
	assert.Contains(t, err.Error(), "test-jet")
}

func TestDecode_MissingSpecs(t *testing.T) {
	_, err := Decode(strings.NewReader(`[{"id": "bare", "type": "military"}]`))
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestDecode_InvalidType(t *testing.T) {
	broken := strings.Replace(validRecord, `"type": "private"`, `"type": "spaceship"`, 1)

	_, err := Decode(strings.NewReader("[" + broken + "]"))
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestDecode_NegativeSpec(t *testing.T) {
	broken := strings.Replace(validRecord, `"height": 6`, `"height": -6`, 1)

	_, err := Decode(strings.NewReader("[" + broken + "]"))
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestDecode_BadJSON(t *testing.T) {
	_, err := Decode(strings.NewReader("{not json"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrMalformedRecord)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aircraft.json")
	require.NoError(t, os.WriteFile(path, []byte("["+validRecord+"]"), 0o644))

	records, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
