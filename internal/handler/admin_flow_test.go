package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rajan167030/portfolio/internal/models"
	"github.com/Rajan167030/portfolio/internal/repository"
	"github.com/Rajan167030/portfolio/internal/service"
)

const testSecret = "test-secret"

// newSiteApp wires the full route table the way cmd/server does, on top of
// the in-memory blog store.
func newSiteApp() *fiber.App {
	store := repository.NewBlogMemorySeeded()
	blogSvc := service.NewBlogService(store, store, service.NewLogNotifier())

	app := fiber.New()
	RegisterRoutes(app,
		NewGitHubHandler(&stubRepoService{}, &stubImageService{}),
		NewProjectsHandler(&stubRepoService{}, &stubImageService{}, nil),
		NewBlogHandler(blogSvc),
		NewAdminHandler("admin", "admin123", testSecret),
		NewEmailHandler(service.NewLogNotifier()),
		testSecret,
	)
	return app
}

func login(t *testing.T, app *fiber.App, username, password string) *http.Response {
	t.Helper()
	resp := postJSON(t, app, "/api/login",
		`{"username":"`+username+`","password":"`+password+`"}`)
	return resp
}

func TestLoginIssuesToken(t *testing.T) {
	app := newSiteApp()

	resp := login(t, app, "admin", "admin123")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &got)
	assert.NotEmpty(t, got.Token)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app := newSiteApp()

	resp := login(t, app, "admin", "wrong")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	app := newSiteApp()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/posts", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminCreatePostWithToken(t *testing.T) {
	app := newSiteApp()

	loginResp := login(t, app, "admin", "admin123")
	defer loginResp.Body.Close()
	var session struct {
		Token string `json:"token"`
	}
	decodeBody(t, loginResp, &session)

	body := `{"title":"New Post","slug":"new-post","published":true}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/posts", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+session.Token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.BlogPost
	decodeBody(t, resp, &created)
	assert.NotEmpty(t, created.ID)

	// The new post is now on the public surface.
	pubReq := httptest.NewRequest(http.MethodGet, "/api/posts/new-post", nil)
	pubResp, err := app.Test(pubReq)
	require.NoError(t, err)
	defer pubResp.Body.Close()
	assert.Equal(t, http.StatusOK, pubResp.StatusCode)
}

func TestAdminRejectsGarbageToken(t *testing.T) {
	app := newSiteApp()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/posts", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer not-a-jwt")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
