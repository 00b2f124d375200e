package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPost(t *testing.T, app *fiber.App, token string, fields map[string]any) map[string]any {
	t.Helper()
	status, body := doRequest(t, app, http.MethodPost, "/api/admin/posts", token, fields)
	require.Equal(t, http.StatusCreated, status)
	return body["post"].(map[string]any)
}

func TestGetPublishedPosts(t *testing.T) {
	t.Parallel()

	app, srv := newTestServer(t)
	admin, _ := seedAdmin(t, srv)
	token := authToken(t, srv, admin)

	createPost(t, app, token, map[string]any{
		"title":        "Published One",
		"content_html": "<p>one</p>",
		"excerpt":      "the first",
		"is_published": true,
		"published_at": "2026-01-01T00:00:00Z",
	})
	createPost(t, app, token, map[string]any{
		"title":        "Published Two",
		"content_html": "<p>two</p>",
		"is_published": true,
		"published_at": "2026-02-01T00:00:00Z",
	})
	createPost(t, app, token, map[string]any{
		"title":        "Still A Draft",
		"content_html": "<p>hidden</p>",
	})

	status, body := doRequest(t, app, http.MethodGet, "/api/posts", "", nil)
	require.Equal(t, http.StatusOK, status)

	posts := body["posts"].([]any)
	require.Len(t, posts, 2)

	// Newest publish date first.
	first := posts[0].(map[string]any)
	assert.Equal(t, "published-two", first["slug"])
	second := posts[1].(map[string]any)
	assert.Equal(t, "published-one", second["slug"])
	assert.Equal(t, "the first", second["excerpt"])

	// Summaries never carry the full HTML body.
	assert.NotContains(t, first, "content_html")
	assert.NotContains(t, second, "content_html")
}

func TestGetPublishedPostsLimit(t *testing.T) {
	t.Parallel()

	app, srv := newTestServer(t)
	admin, _ := seedAdmin(t, srv)
	token := authToken(t, srv, admin)

	for i := 0; i < 3; i++ {
		createPost(t, app, token, map[string]any{
			"title":        fmt.Sprintf("Post Number %d", i),
			"content_html": "<p>body</p>",
			"is_published": true,
		})
	}

	status, body := doRequest(t, app, http.MethodGet, "/api/posts?limit=2", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["posts"].([]any), 2)

	// A garbage limit falls back to the default rather than failing.
	status, body = doRequest(t, app, http.MethodGet, "/api/posts?limit=abc", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["posts"].([]any), 3)
}

func TestGetPublishedPost(t *testing.T) {
	t.Parallel()

	app, srv := newTestServer(t)
	admin, _ := seedAdmin(t, srv)
	token := authToken(t, srv, admin)

	createPost(t, app, token, map[string]any{
		"title":        "Full Detail",
		"content_html": "<p>everything</p>",
		"tags":         "footwork, defense",
		"is_published": true,
	})
	createPost(t, app, token, map[string]any{
		"title":        "Not Yet",
		"content_html": "<p>secret</p>",
	})

	status, body := doRequest(t, app, http.MethodGet, "/api/posts/full-detail", "", nil)
	require.Equal(t, http.StatusOK, status)
	post := body["post"].(map[string]any)
	assert.Equal(t, "<p>everything</p>", post["content_html"])
	assert.Equal(t, []any{"footwork", "defense"}, post["tags"])

	// A draft looks exactly like a missing post.
	status, draftBody := doRequest(t, app, http.MethodGet, "/api/posts/not-yet", "", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, missingBody := doRequest(t, app, http.MethodGet, "/api/posts/never-existed", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, missingBody, draftBody)
}
