package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearch(t *testing.T) {
	repo := setupRepository(t)

	assert.Equal(t, []string{"boeing-747", "ah-64-apache", "boeing-777"}, ids(repo.Search("boeing")))
	assert.Equal(t, []string{"f-22-raptor", "f-35-lightning"}, ids(repo.Search("stealth")))
	assert.Empty(t, repo.Search("united kingdom"))
}

func TestSearch_CaseInsensitive(t *testing.T) {
	repo := setupRepository(t)

	assert.Equal(t, repo.Search("boeing"), repo.Search("BOEING"))
	assert.Equal(t, repo.SearchWide("boeing"), repo.SearchWide("BoEiNg"))
	assert.Equal(t, repo.SearchPicker("boeing"), repo.SearchPicker("BOEING"))
}

func TestSearch_Blank(t *testing.T) {
	repo := setupRepository(t)

	assert.Equal(t, repo.All(), repo.Search(""))
	assert.Equal(t, repo.All(), repo.Search("   "))
}

func TestSearchWide(t *testing.T) {
	repo := setupRepository(t)

	assert.Equal(t, []string{"concorde"}, ids(repo.SearchWide("united kingdom")))
	assert.Equal(t, []string{"airbus-a380"}, ids(repo.SearchWide("France")))
	assert.Equal(t, []string{"boeing-747", "gulfstream-g650"}, ids(repo.SearchWide("jet")))
	assert.Empty(t, repo.SearchWide("zeppelin"))
}

func TestSearchWide_Blank(t *testing.T) {
	repo := setupRepository(t)

	assert.Equal(t, repo.All(), repo.SearchWide(""))
	assert.Equal(t, repo.All(), repo.SearchWide(" \t "))
}

func TestSearchPicker(t *testing.T) {
	repo := setupRepository(t)

	assert.Equal(t, []string{"boeing-747"}, ids(repo.SearchPicker("jet")))
	assert.Equal(t, []string{"f-22-raptor", "f-35-lightning"}, ids(repo.SearchPicker("martin")))
	assert.Empty(t, repo.SearchPicker("France"))
}

func TestSearchPicker_Blank(t *testing.T) {
	repo := setupRepository(t)

	got := repo.SearchPicker("")
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Empty(t, repo.SearchPicker("   "))
}
