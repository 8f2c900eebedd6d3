package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/anonto42/fb-post/backend/internal/middleware"
	"github.com/anonto42/fb-post/backend/internal/repositories"
	"github.com/anonto42/fb-post/backend/internal/router"
	"github.com/anonto42/fb-post/backend/internal/services"
	"github.com/anonto42/fb-post/backend/internal/testutil"
	"github.com/anonto42/fb-post/backend/validators"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const secret = "router-test-secret"

type client struct {
	t     *testing.T
	e     *echo.Echo
	token string
}

func (c client) do(method, path, body string) *httptest.ResponseRecorder {
	c.t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if c.token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+c.token)
	}
	rec := httptest.NewRecorder()
	c.e.ServeHTTP(rec, req)
	return rec
}

func TestFeedOverHTTP(t *testing.T) {
	db := testutil.NewDB(t)
	alice := testutil.SeedUser(t, db, "alice")
	bob := testutil.SeedUser(t, db, "bob")

	store := repositories.NewGormStore(db)
	users, err := services.NewUserDirectory(store.Users(), 0)
	require.NoError(t, err)
	recorder := &testutil.Recorder{}

	e := echo.New()
	e.Validator = validators.NewValidator()
	router.SetupRoutes(e, router.Dependencies{
		Feed:      services.NewFeedService(store, users, recorder, zap.NewNop()),
		Users:     store.Users(),
		JWTSecret: secret,
		Logger:    zap.NewNop(),
	})

	tokenFor := func(userID uint) string {
		token, err := middleware.IssueToken(secret, userID, time.Now())
		require.NoError(t, err)
		return token
	}
	asAlice := client{t: t, e: e, token: tokenFor(alice.ID)}
	asBob := client{t: t, e: e, token: tokenFor(bob.ID)}
	anonymous := client{t: t, e: e}

	assert.Equal(t, http.StatusOK, anonymous.do(http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusUnauthorized, anonymous.do(http.MethodGet, "/api/v1/posts", "").Code)
	assert.Equal(t, http.StatusServiceUnavailable, anonymous.do(http.MethodPost, "/api/v1/auth/firebase-login", `{"idToken":"x"}`).Code)

	rec := asAlice.do(http.MethodPost, "/api/v1/posts", `{"content":"hello feed"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		PostID uint `json:"post_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	postPath := "/api/v1/posts/" + jsonID(created.PostID)

	rec = asBob.do(http.MethodPost, postPath+"/comments", `{"content":"nice"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var comment struct {
		CommentID uint `json:"comment_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &comment))

	rec = asAlice.do(http.MethodPost, "/api/v1/comments/"+jsonID(comment.CommentID)+"/replies", `{"content":"thanks"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = asBob.do(http.MethodPost, postPath+"/reactions", `{"reaction":"LO"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"outcome":"created","reaction":"LO"}`, rec.Body.String())

	rec = asAlice.do(http.MethodGet, postPath, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var detail services.PostDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, "hello feed", detail.PostContent)
	require.Len(t, detail.Reactions, 1)
	assert.Equal(t, 1, detail.Reactions[0].Count)
	require.Equal(t, 1, detail.CommentsCount)
	assert.Equal(t, 1, detail.Comments[0].RepliesCount)

	rec = asAlice.do(http.MethodGet, "/api/v1/posts/positive", "")
	assert.JSONEq(t, `{"post_ids":[`+jsonID(created.PostID)+`]}`, rec.Body.String())

	rec = asAlice.do(http.MethodGet, "/api/v1/posts/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = asBob.do(http.MethodDelete, postPath, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = asAlice.do(http.MethodDelete, postPath, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = asAlice.do(http.MethodGet, "/api/v1/reactions/count", "")
	assert.JSONEq(t, `{"count":0}`, rec.Body.String())

	// one event per successful mutation: post, comment, reply, reaction, delete
	assert.Len(t, recorder.Events(), 5)
}

func jsonID(id uint) string {
	raw, _ := json.Marshal(id)
	return string(raw)
}
