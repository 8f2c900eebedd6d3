package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func serve(t *testing.T, authHeader string) (*httptest.ResponseRecorder, echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	h := JWTAuthMiddleware(testSecret)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return rec, c, h(c)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	return httpErr.Code
}

func TestJWTAuthMiddlewareAcceptsIssuedToken(t *testing.T) {
	token, err := IssueToken(testSecret, 42, time.Now())
	require.NoError(t, err)

	rec, c, err := serve(t, "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(42), c.Get(UserIDKey))
}

func TestJWTAuthMiddlewareRejects(t *testing.T) {
	wrongSecret, err := IssueToken("other-secret", 42, time.Now())
	require.NoError(t, err)
	expired, err := IssueToken(testSecret, 42, time.Now().Add(-2*TokenTTL))
	require.NoError(t, err)
	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &JwtCustomClaims{}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	cases := map[string]string{
		"missing header": "",
		"not bearer":     "Basic abc",
		"garbage":        "Bearer not-a-token",
		"wrong secret":   "Bearer " + wrongSecret,
		"expired":        "Bearer " + expired,
		"no user":        "Bearer " + noUser,
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := serve(t, header)
			assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
		})
	}
}
