package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createMentorWith(t *testing.T, firstName, lastName string, years int, technologies []string) string {
	ts := GetTestServer(t)
	payload := mentorPayload(uniqueEmail("search"))
	payload["firstName"] = firstName
	payload["lastName"] = lastName
	payload["yearsOfExperience"] = years
	payload["technologies"] = technologies

	res, body := ts.SendRequest(t, http.MethodPost, "/api/mentors", payload)
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("mentor registration failed (%d): %s", res.StatusCode, body)
	}
	var parsed struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &parsed))
	return parsed.Data.ID
}

func listIDs(t *testing.T, body string) map[string]bool {
	var parsed mentorListEnvelope
	require.NoError(t, json.Unmarshal([]byte(body), &parsed))
	assert.Equal(t, len(parsed.Data), parsed.Count)

	ids := make(map[string]bool, len(parsed.Data))
	for _, m := range parsed.Data {
		ids[m.ID] = true
	}
	return ids
}

func TestSearchByTechnology(t *testing.T) {
	ts := GetTestServer(t)

	erlangID := createMentorWith(t, "Erin", "Holt", 4, []string{"Erlang", "OTP"})
	goID := createMentorWith(t, "Gil", "Nash", 6, []string{"Go"})

	// Case-insensitive substring over the array entries
	res, body := ts.SendRequest(t, http.MethodGet, "/api/mentors/search?technology=erlan", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	ids := listIDs(t, body)
	assert.True(t, ids[erlangID])
	assert.False(t, ids[goID])
}

func TestSearchByName(t *testing.T) {
	ts := GetTestServer(t)

	targetID := createMentorWith(t, "Quintessa", "Marlowe", 7, []string{"Go"})

	res, body := ts.SendRequest(t, http.MethodGet, "/api/mentors/search?name=quintess", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	ids := listIDs(t, body)
	assert.True(t, ids[targetID])
}

func TestSearchCombinesCriteria(t *testing.T) {
	ts := GetTestServer(t)

	bothID := createMentorWith(t, "Zelda", "Quirke", 3, []string{"Clojure"})
	nameOnlyID := createMentorWith(t, "Zelda", "Quirke", 3, []string{"Go"})

	res, body := ts.SendRequest(t, http.MethodGet,
		"/api/mentors/search?technology=clojure&name=quirke", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	ids := listIDs(t, body)
	assert.True(t, ids[bothID])
	assert.False(t, ids[nameOnlyID])
}

func TestSearchTreatsLikeMetacharactersLiterally(t *testing.T) {
	ts := GetTestServer(t)

	plainID := createMentorWith(t, "Una", "Frost", 5, []string{"Haskell"})
	percentID := createMentorWith(t, "Una", "Frost", 5, []string{"100% remote pairing"})

	// "%" in the query is a literal character, not a wildcard
	res, body := ts.SendRequest(t, http.MethodGet, "/api/mentors/search?technology=100%25", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	ids := listIDs(t, body)
	assert.True(t, ids[percentID])
	assert.False(t, ids[plainID])
}

func TestFilterByCategory(t *testing.T) {
	ts := GetTestServer(t)

	elixirID := createMentorWith(t, "Xiomara", "Vance", 9, []string{"Elixir"})

	res, body := ts.SendRequest(t, http.MethodGet,
		"/api/mentors/filter?category=technologies&q=elixir", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	ids := listIDs(t, body)
	assert.True(t, ids[elixirID])
}

func TestFilterByExperienceIsExact(t *testing.T) {
	ts := GetTestServer(t)

	fortyTwoID := createMentorWith(t, "Avery", "Stone", 42, []string{"Go"})
	fourID := createMentorWith(t, "Avery", "Stone", 4, []string{"Go"})

	res, body := ts.SendRequest(t, http.MethodGet,
		"/api/mentors/filter?category=yearsOfExperience&q=42", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	ids := listIDs(t, body)
	assert.True(t, ids[fortyTwoID])
	assert.False(t, ids[fourID])
}

func TestFilterUnknownCategoryReturnsNone(t *testing.T) {
	ts := GetTestServer(t)

	createMentorWith(t, "Orla", "Finch", 2, []string{"Go"})

	res, body := ts.SendRequest(t, http.MethodGet,
		"/api/mentors/filter?category=availability&q=go", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var parsed mentorListEnvelope
	require.NoError(t, json.Unmarshal([]byte(body), &parsed))
	assert.Equal(t, 0, parsed.Count)
	assert.NotNil(t, parsed.Data)
}
