package borutoserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	borutoserver "github.com/Danik911/Boruto-server/internal"
	"github.com/Danik911/Boruto-server/internal/config"
	"github.com/Danik911/Boruto-server/internal/models"
	"github.com/Danik911/Boruto-server/internal/repositories"
	"github.com/Danik911/Boruto-server/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var server *borutoserver.Server

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	heroRepo := repositories.NewDefaultHeroRepository()
	heroService := services.NewDefaultHeroService(heroRepo)
	server = borutoserver.NewServer(heroService, config.Default())
	os.Exit(m.Run())
}

func TestGetRoot(t *testing.T) {
	response := doGet(t, borutoserver.Endpoints.Root, http.StatusOK)
	assert.Equal(t, "Welcome to Boruto server!", response.Body.String())
}

func TestGetAllHeroesSequentially(t *testing.T) {
	repo := repositories.NewDefaultHeroRepository()
	var joined []models.Hero

	for page := 1; page <= repositories.CatalogPages; page++ {
		response := doGet(t, borutoserver.Endpoints.Heroes+"?page="+strconv.Itoa(page), http.StatusOK)
		actual := unmarshal[models.ApiResponse](t, response.Body.Bytes())

		expectedHeroes, err := repo.GetPage(context.Background(), page)
		require.NoError(t, err)
		expected := models.ApiResponse{
			Success:    true,
			Message:    "OK",
			PrevPage:   calculatePage(page)["prevPage"],
			NextPage:   calculatePage(page)["nextPage"],
			Heroes:     expectedHeroes,
			LastUpdate: actual.LastUpdate,
		}
		assert.Equal(t, expected, actual, "page %d", page)
		assert.Positive(t, actual.LastUpdate)
		joined = append(joined, actual.Heroes...)
	}

	assert.Equal(t, repositories.BorutoHeroes, joined)
}

func TestGetAllHeroesDefaultPage(t *testing.T) {
	withDefault := unmarshal[models.ApiResponse](t, doGet(t, borutoserver.Endpoints.Heroes, http.StatusOK).Body.Bytes())
	firstPage := unmarshal[models.ApiResponse](t, doGet(t, borutoserver.Endpoints.Heroes+"?page=1", http.StatusOK).Body.Bytes())

	withDefault.LastUpdate = 0
	firstPage.LastUpdate = 0
	assert.Equal(t, firstPage, withDefault)
}

func TestGetAllHeroesErrors(t *testing.T) {
	t.Run("page number out of range", func(t *testing.T) {
		for _, page := range []string{"0", "6"} {
			response := doGet(t, borutoserver.Endpoints.Heroes+"?page="+page, http.StatusNotFound)
			actual := unmarshal[models.ApiResponse](t, response.Body.Bytes())
			assert.Equal(t, models.ApiResponse{
				Success:    false,
				Message:    "Only numbers from 1 to 5 are accepted",
				Heroes:     []models.Hero{},
				LastUpdate: actual.LastUpdate,
			}, actual)
		}
	})

	t.Run("invalid page number", func(t *testing.T) {
		response := doGet(t, borutoserver.Endpoints.Heroes+"?page=invalid", http.StatusBadRequest)
		actual := unmarshal[models.ApiResponse](t, response.Body.Bytes())
		assert.Equal(t, models.ApiResponse{
			Success:    false,
			Message:    "Invalid request, only numbers are accepted",
			Heroes:     []models.Hero{},
			LastUpdate: actual.LastUpdate,
		}, actual)
	})
}

func TestSearchHeroes(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected int
	}{
		{name: "one hero found", query: "sas", expected: 1},
		{name: "multiple heroes found", query: "sa", expected: 3},
		{name: "unknown hero", query: "unknown", expected: 0},
		{name: "empty search field", query: "", expected: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response := doGet(t, borutoserver.Endpoints.HeroSearch+"?name="+tt.query, http.StatusOK)
			actual := unmarshal[models.ApiResponse](t, response.Body.Bytes())
			assert.Len(t, actual.Heroes, tt.expected)
		})
	}
}

func TestNonExistingEndpoint(t *testing.T) {
	response := doGet(t, "/unknown", http.StatusNotFound)
	assert.Equal(t, "Page not found", response.Body.String())
}

func calculatePage(page int) map[string]*int {
	result := map[string]*int{"prevPage": nil, "nextPage": nil}
	if page >= 2 && page <= 5 {
		prev := page - 1
		result["prevPage"] = &prev
	}
	if page >= 1 && page <= 4 {
		next := page + 1
		result["nextPage"] = &next
	}
	return result
}

func doGet(t *testing.T, target string, expected int) *httptest.ResponseRecorder {
	t.Helper()
	request, _ := http.NewRequest(http.MethodGet, target, nil)
	response := httptest.NewRecorder()
	server.Handler().ServeHTTP(response, request)
	require.Equal(t, expected, response.Code)
	return response
}

func unmarshal[T any](t *testing.T, body []byte) T {
	t.Helper()
	var result T
	err := json.Unmarshal(body, &result)
	if err != nil {
		t.Fatal(err)
	}
	return result
}
