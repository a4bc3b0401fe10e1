package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog-backend/internal/config"
	"library-catalog-backend/pkg/container"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupTestServer(t *testing.T) *gin.Engine {
	t.Helper()

	cfg := &config.Config{
		App: config.AppConfig{
			Name:        "Library Catalog API",
			Environment: "development",
			Port:        "0",
			Version:     "test",
		},
		Database:         config.DatabaseConfig{Path: ":memory:"},
		JWT:              config.JWTConfig{Secret: "test-secret"},
		EnableTestRoutes: true,
	}

	c, err := container.New(cfg)
	require.NoError(t, err)
	t.Cleanup(c.Cleanup)

	return SetupRouter(c)
}

func doRequest(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		raw, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// registerAndLogin creates a user and returns its bearer token.
func registerAndLogin(t *testing.T, router *gin.Engine, username, pass string) string {
	t.Helper()

	w := doRequest(router, http.MethodPost, "/register", "", gin.H{"username": username, "password": pass})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doRequest(router, http.MethodPost, "/login", "", gin.H{"username": username, "password": pass})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	token, ok := decodeBody(t, w)["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

func createAuthor(t *testing.T, router *gin.Engine, token, name string) string {
	t.Helper()

	w := doRequest(router, http.MethodPost, "/authors", token, gin.H{"name": name, "bio": "bio of " + name})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	id, ok := decodeBody(t, w)["id"].(string)
	require.True(t, ok)
	return id
}

func TestHealthEndpoint(t *testing.T) {
	router := setupTestServer(t)

	w := doRequest(router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decodeBody(t, w)["status"])
}

func TestRegisterValidation(t *testing.T) {
	router := setupTestServer(t)

	w := doRequest(router, http.MethodPost, "/register", "", gin.H{"username": "ab", "password": "123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	errs, ok := decodeBody(t, w)["errors"].([]interface{})
	require.True(t, ok)
	// Both fields fail; every failure is reported, not just the first.
	assert.Len(t, errs, 2)
}

func TestRegisterDuplicate(t *testing.T) {
	router := setupTestServer(t)

	w := doRequest(router, http.MethodPost, "/register", "", gin.H{"username": "alice", "password": "secret123"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(router, http.MethodPost, "/register", "", gin.H{"username": "alice", "password": "secret123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Username already taken", decodeBody(t, w)["error"])
}

func TestLoginFailuresAreUniform(t *testing.T) {
	router := setupTestServer(t)
	registerAndLogin(t, router, "alice", "secret123")

	for _, body := range []gin.H{
		{"username": "alice", "password": "wrongpass"},
		{"username": "nobody", "password": "secret123"},
		{"username": "alice"},
	} {
		w := doRequest(router, http.MethodPost, "/login", "", body)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid username or password", decodeBody(t, w)["error"])
	}
}

func TestAuthGuards(t *testing.T) {
	router := setupTestServer(t)

	// No token at all: 401.
	w := doRequest(router, http.MethodPost, "/authors", "", gin.H{"name": "X", "bio": "Y"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Unauthorized: No token provided", decodeBody(t, w)["error"])

	// Present but invalid token: 403, a different outcome on purpose.
	w = doRequest(router, http.MethodPost, "/authors", "not-a-jwt", gin.H{"name": "X", "bio": "Y"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Forbidden: Invalid token", decodeBody(t, w)["error"])
}

func TestProfileAndLogout(t *testing.T) {
	router := setupTestServer(t)
	token := registerAndLogin(t, router, "alice", "secret123")

	w := doRequest(router, http.MethodGet, "/profile", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Welcome, alice!", decodeBody(t, w)["message"])

	w = doRequest(router, http.MethodPost, "/logout", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Logout successful", decodeBody(t, w)["message"])
}

func TestAuthorLifecycle(t *testing.T) {
	router := setupTestServer(t)
	token := registerAndLogin(t, router, "alice", "secret123")

	// Empty catalog serializes as [], not null.
	w := doRequest(router, http.MethodGet, "/authors", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())

	id := createAuthor(t, router, token, "Ursula K. Le Guin")

	w = doRequest(router, http.MethodGet, "/authors/"+id, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ursula K. Le Guin", decodeBody(t, w)["name"])

	w = doRequest(router, http.MethodGet, "/authors", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var authors []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &authors))
	assert.Len(t, authors, 1)

	w = doRequest(router, http.MethodDelete, "/authors/"+id, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Author deleted successfully.", decodeBody(t, w)["message"])

	w = doRequest(router, http.MethodGet, "/authors/"+id, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Author not found.", decodeBody(t, w)["error"])
}

func TestAuthorOwnership(t *testing.T) {
	router := setupTestServer(t)
	aliceToken := registerAndLogin(t, router, "alice", "secret123")
	bobToken := registerAndLogin(t, router, "bob", "secret456")

	id := createAuthor(t, router, aliceToken, "Contested Author")

	w := doRequest(router, http.MethodDelete, "/authors/"+id, bobToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Alice still can.
	w = doRequest(router, http.MethodDelete, "/authors/"+id, aliceToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthorDeleteBlockedByBooks(t *testing.T) {
	router := setupTestServer(t)
	token := registerAndLogin(t, router, "alice", "secret123")
	authorID := createAuthor(t, router, token, "Prolific Author")

	w := doRequest(router, http.MethodPost, "/books", token, gin.H{
		"author_id": authorID,
		"title":     "Only Book",
		"pub_year":  "1999",
		"genre":     "fantasy",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	bookID := decodeBody(t, w)["id"].(string)

	w = doRequest(router, http.MethodDelete, "/authors/"+authorID, token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Cannot delete author with associated books.", decodeBody(t, w)["error"])

	// Removing the book unblocks the author.
	w = doRequest(router, http.MethodDelete, "/books/"+bookID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodDelete, "/authors/"+authorID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBookLifecycle(t *testing.T) {
	router := setupTestServer(t)
	token := registerAndLogin(t, router, "alice", "secret123")
	authorID := createAuthor(t, router, token, "Frank Herbert")

	// Dangling author reference fails cleanly.
	w := doRequest(router, http.MethodPost, "/books", token, gin.H{
		"author_id": "00000000-0000-0000-0000-00000000beef",
		"title":     "Orphan",
		"pub_year":  "2000",
		"genre":     "sci-fi",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Author not found.", decodeBody(t, w)["error"])

	w = doRequest(router, http.MethodPost, "/books", token, gin.H{
		"author_id": authorID,
		"title":     "Dune",
		"pub_year":  "1965",
		"genre":     "sci-fi",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	bookID := decodeBody(t, w)["id"].(string)

	w = doRequest(router, http.MethodGet, "/books/"+bookID, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Dune", decodeBody(t, w)["title"])

	w = doRequest(router, http.MethodPatch, "/books/"+bookID, token, gin.H{
		"author_id": authorID,
		"title":     "Dune Messiah",
		"pub_year":  "1969",
		"genre":     "sci-fi",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Book updated successfully.", decodeBody(t, w)["message"])

	w = doRequest(router, http.MethodGet, "/books/"+bookID, "", nil)
	assert.Equal(t, "Dune Messiah", decodeBody(t, w)["title"])

	w = doRequest(router, http.MethodDelete, "/books/"+bookID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Book deleted successfully.", decodeBody(t, w)["message"])

	w = doRequest(router, http.MethodGet, "/books/"+bookID, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Book not found.", decodeBody(t, w)["error"])
}

func TestBookValidation(t *testing.T) {
	router := setupTestServer(t)
	token := registerAndLogin(t, router, "alice", "secret123")
	authorID := createAuthor(t, router, token, "Any Author")

	w := doRequest(router, http.MethodPost, "/books", token, gin.H{
		"author_id": authorID,
		"title":     "Bad Year",
		"pub_year":  "65",
		"genre":     "sci-fi",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	errs := fmt.Sprintf("%v", decodeBody(t, w)["errors"])
	assert.Contains(t, errs, "Invalid year format")

	w = doRequest(router, http.MethodPost, "/books", token, gin.H{
		"author_id": authorID,
		"title":     "Bad Genre",
		"pub_year":  "1999",
		"genre":     "horror",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookFilters(t *testing.T) {
	router := setupTestServer(t)
	token := registerAndLogin(t, router, "alice", "secret123")
	authorID := createAuthor(t, router, token, "Filter Author")

	seed := []gin.H{
		{"author_id": authorID, "title": "Old Fantasy", "pub_year": "1954", "genre": "fantasy"},
		{"author_id": authorID, "title": "New Fantasy", "pub_year": "2001", "genre": "fantasy"},
		{"author_id": authorID, "title": "New Mystery", "pub_year": "2010", "genre": "mystery"},
	}
	for _, b := range seed {
		w := doRequest(router, http.MethodPost, "/books", token, b)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	listTitles := func(query string) []string {
		w := doRequest(router, http.MethodGet, "/books"+query, "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var books []map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &books))

		titles := make([]string, 0, len(books))
		for _, b := range books {
			titles = append(titles, b["title"].(string))
		}
		return titles
	}

	assert.Len(t, listTitles(""), 3)
	assert.ElementsMatch(t, []string{"New Fantasy", "New Mystery"}, listTitles("?pub_year=2000"))
	assert.ElementsMatch(t, []string{"Old Fantasy", "New Fantasy"}, listTitles("?genre=fantasy"))
	// Conjunctive: both conditions must hold.
	assert.Equal(t, []string{"New Fantasy"}, listTitles("?pub_year=2000&genre=fantasy"))
	assert.Empty(t, listTitles("?genre=romance"))
}

func TestBookOwnership(t *testing.T) {
	router := setupTestServer(t)
	aliceToken := registerAndLogin(t, router, "alice", "secret123")
	bobToken := registerAndLogin(t, router, "bob", "secret456")
	authorID := createAuthor(t, router, aliceToken, "Shared Author")

	w := doRequest(router, http.MethodPost, "/books", aliceToken, gin.H{
		"author_id": authorID,
		"title":     "Alice's Book",
		"pub_year":  "2020",
		"genre":     "romance",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	bookID := decodeBody(t, w)["id"].(string)

	// Bob can read but not mutate.
	w = doRequest(router, http.MethodGet, "/books/"+bookID, bobToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodPatch, "/books/"+bookID, bobToken, gin.H{
		"author_id": authorID,
		"title":     "Bob's Takeover",
		"pub_year":  "2021",
		"genre":     "romance",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(router, http.MethodDelete, "/books/"+bookID, bobToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestResetEndpoint(t *testing.T) {
	router := setupTestServer(t)
	token := registerAndLogin(t, router, "alice", "secret123")
	createAuthor(t, router, token, "Doomed Author")

	w := doRequest(router, http.MethodDelete, "/tests/reset", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Test database reset.", decodeBody(t, w)["message"])

	w = doRequest(router, http.MethodGet, "/authors", "", nil)
	assert.Equal(t, "[]", w.Body.String())

	// Users are wiped too; the old credentials no longer work.
	w = doRequest(router, http.MethodPost, "/login", "", gin.H{"username": "alice", "password": "secret123"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
