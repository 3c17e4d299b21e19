package university

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uniscope/uniscope-api/catalog"
	"github.com/uniscope/uniscope-api/model"
)

func newTestApp(t *testing.T, store Catalog) *fiber.App {
	t.Helper()

	handler := NewUniversityHandler(store)
	app := fiber.New()
	universities := app.Group("/api/universities")
	universities.Get("/", handler.ListUniversities)
	universities.Get("/search", handler.SearchUniversities)
	universities.Get("/:slug", handler.GetUniversity)
	return app
}

func newTestStore(t *testing.T) *catalog.Store {
	t.Helper()

	store, err := catalog.New([]model.University{
		{
			ID:           "1",
			Slug:         "mit",
			Name:         "Massachusetts Institute of Technology",
			City:         "Cambridge",
			CountryFull:  "United States",
			Rating:       1,
			DegreeLevels: []string{model.DegreeBachelor},
		},
		{
			ID:           "2",
			Slug:         "oxford",
			Name:         "University of Oxford",
			City:         "Oxford",
			CountryFull:  "United Kingdom",
			Rating:       3,
			DegreeLevels: []string{model.DegreeMaster},
		},
	})
	require.NoError(t, err)
	return store
}

func doRequest(t *testing.T, app *fiber.App, path string) (*http.Response, []byte) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, body
}

func TestListUniversities(t *testing.T) {
	app := newTestApp(t, newTestStore(t))

	resp, body := doRequest(t, app, "/api/universities")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var universities []model.University
	require.NoError(t, json.Unmarshal(body, &universities))
	require.Len(t, universities, 2)
	assert.Equal(t, "mit", universities[0].Slug)
	assert.Equal(t, "oxford", universities[1].Slug)
}

func TestSearchUniversities(t *testing.T) {
	app := newTestApp(t, newTestStore(t))

	resp, body := doRequest(t, app, "/api/universities/search?q=oxford")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var results []model.University
	require.NoError(t, json.Unmarshal(body, &results))
	require.Len(t, results, 1)
	assert.Equal(t, "oxford", results[0].Slug)
}

func TestSearchUniversitiesBlankQuery(t *testing.T) {
	app := newTestApp(t, newTestStore(t))

	for _, path := range []string{"/api/universities/search", "/api/universities/search?q="} {
		resp, body := doRequest(t, app, path)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		// an empty array, never null
		assert.JSONEq(t, "[]", string(body))
	}
}

func TestGetUniversityBySlug(t *testing.T) {
	app := newTestApp(t, newTestStore(t))

	resp, body := doRequest(t, app, "/api/universities/mit")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var u model.University
	require.NoError(t, json.Unmarshal(body, &u))
	assert.Equal(t, "Massachusetts Institute of Technology", u.Name)
}

func TestGetUniversityNotFound(t *testing.T) {
	app := newTestApp(t, newTestStore(t))

	resp, body := doRequest(t, app, "/api/universities/harvard")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var errBody map[string]string
	require.NoError(t, json.Unmarshal(body, &errBody))
	assert.Equal(t, "University not found", errBody["message"])
}

func TestSearchRouteNotShadowedBySlug(t *testing.T) {
	app := newTestApp(t, newTestStore(t))

	// "search" must never resolve as a slug lookup.
	resp, _ := doRequest(t, app, "/api/universities/search?q=zzz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// failingStore simulates a broken store implementation.
type failingStore struct{}

func (failingStore) ListAll() ([]model.University, error) {
	return nil, errors.New("backend unavailable")
}

func (failingStore) GetBySlug(string) (model.University, error) {
	return model.University{}, errors.New("backend unavailable")
}

func (failingStore) Search(string) ([]model.University, error) {
	return nil, errors.New("backend unavailable")
}

func TestStoreFailuresReturnGenericMessages(t *testing.T) {
	app := newTestApp(t, failingStore{})

	tests := []struct {
		path string
		want string
	}{
		{"/api/universities", "Failed to fetch universities"},
		{"/api/universities/search?q=x", "Failed to search universities"},
		{"/api/universities/mit", "Failed to fetch university"},
	}

	for _, tt := range tests {
		resp, body := doRequest(t, app, tt.path)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode, tt.path)

		var errBody map[string]string
		require.NoError(t, json.Unmarshal(body, &errBody))
		assert.Equal(t, tt.want, errBody["message"], tt.path)
	}
}
