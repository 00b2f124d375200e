package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostLifecycle(t *testing.T) {
	t.Parallel()

	app, srv := newTestServer(t)
	admin, _ := seedAdmin(t, srv)
	token := authToken(t, srv, admin)

	// Create a draft.
	status, body := doRequest(t, app, http.MethodPost, "/api/admin/posts", token, map[string]any{
		"title":        "Pre-Season Drills That Actually Stick",
		"content_html": "<p>Start with footwork.</p>",
		"tags":         []string{"drills", "pre-season"},
	})
	require.Equal(t, http.StatusCreated, status)

	post := body["post"].(map[string]any)
	assert.Equal(t, "pre-season-drills-that-actually-stick", post["slug"])
	assert.Equal(t, "Coach Angelo", post["author_name"])
	assert.Equal(t, false, post["is_published"])
	assert.Nil(t, post["published_at"])
	assert.Equal(t, []any{"drills", "pre-season"}, post["tags"])
	id := post["id"].(float64)

	// Drafts show up in the admin list.
	status, body = doRequest(t, app, http.MethodGet, "/api/admin/posts", token, nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, body["posts"].([]any), 1)

	// But not on the public surface.
	status, body = doRequest(t, app, http.MethodGet, "/api/posts", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["posts"])

	// Publish it.
	status, body = doRequest(t, app, http.MethodPut, fmt.Sprintf("/api/admin/posts/%.0f", id), token, map[string]any{
		"is_published": true,
	})
	require.Equal(t, http.StatusOK, status)
	post = body["post"].(map[string]any)
	assert.Equal(t, true, post["is_published"])
	assert.NotNil(t, post["published_at"])
	// Omitted fields survived the update untouched.
	assert.Equal(t, "Pre-Season Drills That Actually Stick", post["title"])
	assert.Equal(t, []any{"drills", "pre-season"}, post["tags"])

	// Now it is publicly readable by slug.
	status, body = doRequest(t, app, http.MethodGet, "/api/posts/pre-season-drills-that-actually-stick", "", nil)
	require.Equal(t, http.StatusOK, status)
	post = body["post"].(map[string]any)
	assert.Equal(t, "<p>Start with footwork.</p>", post["content_html"])

	// Delete and confirm it is gone everywhere.
	status, _ = doRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/admin/posts/%.0f", id), token, nil)
	require.Equal(t, http.StatusNoContent, status)

	status, _ = doRequest(t, app, http.MethodGet, "/api/posts/pre-season-drills-that-actually-stick", "", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = doRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/admin/posts/%.0f", id), token, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCreatePostValidation(t *testing.T) {
	t.Parallel()

	app, srv := newTestServer(t)
	admin, _ := seedAdmin(t, srv)
	token := authToken(t, srv, admin)

	t.Run("missing title", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodPost, "/api/admin/posts", token, map[string]any{
			"content_html": "<p>body</p>",
		})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "VALIDATION_ERROR", body["code"])
	})

	t.Run("whitespace title", func(t *testing.T) {
		status, _ := doRequest(t, app, http.MethodPost, "/api/admin/posts", token, map[string]any{
			"title":        "   ",
			"content_html": "<p>body</p>",
		})
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("missing content", func(t *testing.T) {
		status, _ := doRequest(t, app, http.MethodPost, "/api/admin/posts", token, map[string]any{
			"title": "No Body",
		})
		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestCreatePostSlugConflict(t *testing.T) {
	t.Parallel()

	app, srv := newTestServer(t)
	admin, _ := seedAdmin(t, srv)
	token := authToken(t, srv, admin)

	status, _ := doRequest(t, app, http.MethodPost, "/api/admin/posts", token, map[string]any{
		"title":        "Game Day Checklist",
		"content_html": "<p>one</p>",
	})
	require.Equal(t, http.StatusCreated, status)

	status, body := doRequest(t, app, http.MethodPost, "/api/admin/posts", token, map[string]any{
		"title":        "Game Day: Checklist",
		"content_html": "<p>two</p>",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "CONFLICT", body["code"])
	assert.Equal(t, "Slug already exists", body["error"])
}

func TestUpdatePostErrors(t *testing.T) {
	t.Parallel()

	app, srv := newTestServer(t)
	admin, _ := seedAdmin(t, srv)
	token := authToken(t, srv, admin)

	t.Run("invalid id", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodPut, "/api/admin/posts/abc", token, map[string]any{
			"title": "Anything",
		})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Invalid id", body["error"])
	})

	t.Run("unknown id", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodPut, "/api/admin/posts/9999", token, map[string]any{
			"title": "Anything",
		})
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "NOT_FOUND", body["code"])
	})
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	t.Parallel()

	app, _ := newTestServer(t)

	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/admin/posts"},
		{http.MethodPost, "/api/admin/posts"},
		{http.MethodPut, "/api/admin/posts/1"},
		{http.MethodDelete, "/api/admin/posts/1"},
	} {
		status, _ := doRequest(t, app, route.method, route.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, status, "%s %s", route.method, route.path)
	}
}
