package cli

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planes_info/internal/catalog"
	"planes_info/internal/compare"
	"planes_info/internal/config"
	"planes_info/internal/dataset"
	"planes_info/internal/models"
	"planes_info/internal/query"
	"planes_info/internal/worldmap"
)

// execute runs the command tree with args and returns everything it printed
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.ConfigPathEnv, "")

	var out bytes.Buffer
	err := run(&app{}, args, &out, &out)
	return out.String(), err
}

func runJSON(t *testing.T, v interface{}, args ...string) {
	t.Helper()
	out, err := execute(t, append([]string{"--format", "json"}, args...)...)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), v), out)
}

func summaryIDs(s []summary) []string {
	out := make([]string, 0, len(s))
	for _, a := range s {
		out = append(out, a.ID)
	}
	return out
}

func TestInvalidFormat(t *testing.T) {
	_, err := execute(t, "--format", "xml", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestList_All(t *testing.T) {
	var got listOutput
	runJSON(t, &got, "list")

	assert.Equal(t, 8, got.Count)
	assert.Equal(t, "", got.Query)
	assert.Equal(t, query.TypeAll, got.State.Type)
	assert.Equal(t, "boeing-747", got.Aircraft[0].ID)
}

func TestList_HelicopterApache(t *testing.T) {
	var got listOutput
	runJSON(t, &got, "list", "--type", "helicopter", "--search", "apache")

	assert.Equal(t, []string{"ah-64-apache"}, summaryIDs(got.Aircraft))
	assert.Equal(t, "search=apache&type=helicopter", got.Query)
}

func TestList_UnknownTypeShowsAll(t *testing.T) {
	var got listOutput
	runJSON(t, &got, "list", "--type", "spaceship")

	assert.Equal(t, 8, got.Count)
	assert.Equal(t, query.TypeAll, got.State.Type)
}

func TestList_RestoreState(t *testing.T) {
	var got listOutput
	runJSON(t, &got, "list", "--state", "?search=boeing&type=commercial")

	assert.Equal(t, []string{"boeing-747", "boeing-777"}, summaryIDs(got.Aircraft))
	assert.Equal(t, "search=boeing&type=commercial", got.Query)
}

func TestList_FlagOverridesState(t *testing.T) {
	var got listOutput
	runJSON(t, &got, "list", "--state", "search=boeing&type=commercial", "--type", "helicopter")

	assert.Equal(t, []string{"ah-64-apache"}, summaryIDs(got.Aircraft))
}

func TestList_Text(t *testing.T) {
	out, err := execute(t, "list", "-t", "helicopter", "-s", "apache")
	require.NoError(t, err)

	assert.Contains(t, out, "Showing 1 aircraft for \"apache\"")
	assert.Contains(t, out, "AH-64 Apache")
	assert.Contains(t, out, "293 km/h")
	assert.Contains(t, out, "state: search=apache&type=helicopter")
}

func TestList_NoResults(t *testing.T) {
	out, err := execute(t, "list", "-t", "private", "-s", "raptor")
	require.NoError(t, err)

	assert.Contains(t, out, "No aircraft found.")
	assert.Contains(t, out, "private jets")
}

func TestGet(t *testing.T) {
	var got models.Aircraft
	runJSON(t, &got, "get", "f-22-raptor")

	assert.Equal(t, models.TypeMilitary, got.Type)
	assert.Equal(t, 2, got.Specs.Engines)
}

func TestGet_Text(t *testing.T) {
	out, err := execute(t, "get", "concorde")
	require.NoError(t, err)

	assert.Contains(t, out, "Concorde")
	assert.Contains(t, out, "2,179 km/h")
	assert.Contains(t, out, "Fun Facts:")
}

func TestGet_NotFound(t *testing.T) {
	out, err := execute(t, "get", "hindenburg")
	require.Error(t, err)

	assert.ErrorIs(t, err, catalog.ErrNotFound)
	assert.Contains(t, out, "Aircraft not found: hindenburg")
}

func TestGet_NotFoundJSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "get", "hindenburg")
	require.Error(t, err)

	assert.ErrorIs(t, err, catalog.ErrNotFound)
	assert.Empty(t, out)
}

func TestSearch(t *testing.T) {
	var got searchOutput
	runJSON(t, &got, "search", "jet")
	assert.Equal(t, []string{"boeing-747", "gulfstream-g650"}, summaryIDs(got.Aircraft))

	runJSON(t, &got, "search", "--picker", "jet")
	assert.True(t, got.Picker)
	assert.Equal(t, []string{"boeing-747"}, summaryIDs(got.Aircraft))
}

func TestSearch_PickerBlank(t *testing.T) {
	var got searchOutput
	runJSON(t, &got, "search", "--picker")

	assert.Equal(t, 0, got.Count)
	assert.Empty(t, got.Aircraft)
}

func TestCompare(t *testing.T) {
	var got compareOutput
	runJSON(t, &got, "compare", "boeing-747", "concorde")

	require.True(t, got.Ready)
	require.Len(t, got.Rows, 8)
	assert.Equal(t, "maxSpeed", got.Rows[0].Key)
	assert.Equal(t, compare.WinnerRight, got.Rows[0].Winner)
	require.NotNil(t, got.Score)
	assert.Equal(t, "boeing-747", got.Left.ID)
	assert.Equal(t, "concorde", got.Right.ID)
}

func TestCompare_Text(t *testing.T) {
	out, err := execute(t, "compare", "airbus-a380", "f-22-raptor")
	require.NoError(t, err)

	assert.Contains(t, out, "19,700 kg *")
	assert.Contains(t, out, "Score: Airbus A380 Superjumbo 1, F-22 Raptor 7")
}

func TestCompare_UnsetSlot(t *testing.T) {
	out, err := execute(t, "compare", "boeing-747")
	require.NoError(t, err)
	assert.Contains(t, out, "Select two aircraft to compare.")

	var got compareOutput
	runJSON(t, &got, "compare", "-", "concorde")
	assert.False(t, got.Ready)
	assert.Empty(t, got.Rows)
	assert.Nil(t, got.Score)
	require.Len(t, got.Fields, 8)
	assert.Equal(t, fieldOutput{Key: "maxSpeed", Label: "Max Speed", Unit: "km/h", Direction: "higher"}, got.Fields[0])
	assert.Equal(t, "lower", got.Fields[7].Direction)
}

func TestCompare_UnsetSlotText(t *testing.T) {
	out, err := execute(t, "compare")
	require.NoError(t, err)

	assert.Contains(t, out, "Compared fields:")
	assert.Contains(t, out, "Max Speed (higher is better)")
	assert.Contains(t, out, "Weight (lower is better)")
}

func TestCompare_UnknownID(t *testing.T) {
	_, err := execute(t, "compare", "boeing-747", "hindenburg")
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
	assert.Contains(t, err.Error(), "right slot")
}

func TestMap(t *testing.T) {
	var got worldmap.View
	runJSON(t, &got, "map", "--type", "helicopter")

	assert.Equal(t, "helicopter", got.Type)
	require.Len(t, got.Markers, 1)
	assert.Equal(t, "ah-64-apache", got.Markers[0].ID)
	assert.Equal(t, "#8b5cf6", got.Markers[0].Color)
	assert.Equal(t, worldmap.DefaultZoom, got.Zoom)
	assert.Equal(t, worldmap.Point{Lat: 20, Lon: 0}, got.Center)
}

func TestMap_CenterKeys(t *testing.T) {
	var got map[string]json.RawMessage
	runJSON(t, &got, "map")

	var center map[string]float64
	require.NoError(t, json.Unmarshal(got["center"], &center))
	assert.Equal(t, map[string]float64{"lat": 20, "lon": 0}, center)
}

func TestMap_Text(t *testing.T) {
	out, err := execute(t, "map")
	require.NoError(t, err)

	assert.Contains(t, out, "zoom 2")
	assert.Contains(t, out, "All Aircraft (8)")
	assert.Contains(t, out, "#ef4444  Military")
}

func TestFacts(t *testing.T) {
	var got factsOutput
	runJSON(t, &got, "facts", "--category", "speed", "--aircraft")

	require.Len(t, got.Groups, 1)
	assert.Equal(t, "Speed Records", got.Groups[0].Title)
	assert.Len(t, got.Stats, 4)
	assert.Len(t, got.Aircraft, 8)
}

func TestFacts_Text(t *testing.T) {
	out, err := execute(t, "facts", "--category", "size")
	require.NoError(t, err)

	assert.Contains(t, out, "Categories: all, speed, size, history, technology, passengers, military")
	assert.Contains(t, out, "Size Matters:")
	assert.NotContains(t, out, "Speed Records:")
}

func TestTypes(t *testing.T) {
	var got []query.TypeCount
	runJSON(t, &got, "types")

	require.Len(t, got, 5)
	assert.Equal(t, query.TypeCount{Value: query.TypeAll, Label: "All Aircraft", Count: 8}, got[0])
	assert.Equal(t, 4, got[1].Count)
}

func TestFeatured(t *testing.T) {
	var got []summary
	runJSON(t, &got, "featured")
	assert.Len(t, got, defaultFeatured)

	runJSON(t, &got, "featured", "-n", "100")
	assert.Len(t, got, 8)
}

func TestExport(t *testing.T) {
	var got []models.Aircraft
	runJSON(t, &got, "export")

	require.Len(t, got, 8)
	assert.Equal(t, "f-35-lightning", got[7].ID)
}

func TestExport_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	_, err := execute(t, "export", "-o", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got []models.Aircraft
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Len(t, got, 8)
}

func TestSnapshotConfig(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "catalog.db")
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("db_path: "+dbPath+"\nseed_batch_size: 3\nlog:\n  level: error\n"), 0o644))

	for i := 0; i < 2; i++ {
		var got listOutput
		runJSON(t, &got, "--config", cfgPath, "list", "-t", "commercial")
		assert.Equal(t, []string{"boeing-747", "airbus-a380", "concorde", "boeing-777"}, summaryIDs(got.Aircraft))
	}

	_, err := os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestSnapshotConfig_DuplicateID(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "catalog.db")
	dataPath := filepath.Join(dir, "aircraft.json")
	cfgPath := filepath.Join(dir, "config.yaml")

	records, err := dataset.Default()
	require.NoError(t, err)
	data, err := json.Marshal(append(records, records[0]))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(dataPath, data, 0o644))
	require.NoError(t, os.WriteFile(cfgPath, []byte("db_path: "+dbPath+"\ndataset_path: "+dataPath+"\nlog:\n  level: error\n"), 0o644))

	_, err = execute(t, "--config", cfgPath, "list")
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrDuplicateID)

	_, err = os.Stat(dbPath)
	assert.True(t, os.IsNotExist(err))
}

func TestRun_ClosesLogFileOnError(t *testing.T) {
	t.Setenv(config.ConfigPathEnv, "")
	t.Cleanup(func() {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	})

	dir := t.TempDir()
	logPath := filepath.Join(dir, "planes_info.log")
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log:\n  level: debug\n  file: "+logPath+"\n"), 0o644))

	a := &app{}
	var out bytes.Buffer
	err := run(a, []string{"--config", cfgPath, "get", "hindenburg"}, &out, &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
	assert.Nil(t, a.logCloser)

	logged, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logged), "Catalog loaded")
}
