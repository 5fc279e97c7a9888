package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ydalvarez/techstore/internal/models"
	"github.com/ydalvarez/techstore/internal/session"
	"github.com/ydalvarez/techstore/internal/token"
)

var testSecret = []byte("guard-test-secret")

func newGuard(t *testing.T) (*Guard, *session.Store) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	sessions := session.NewStore(db)
	require.NoError(t, sessions.Seed(t.Context()))
	return &Guard{Sessions: sessions, JWTSecret: testSecret}, sessions
}

func call(mw func(echo.HandlerFunc) echo.HandlerFunc, cookies ...*http.Cookie) error {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	return h(c)
}

func cookieFor(t *testing.T, user models.User) *http.Cookie {
	t.Helper()
	signed, exp, err := token.SignAccess(user.ID, user.Role, testSecret)
	require.NoError(t, err)
	return token.CreateCookie(token.AccessCookie, signed, "/", exp)
}

func TestRequireLoginNoCookie(t *testing.T) {
	g, _ := newGuard(t)

	err := call(g.RequireLogin)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestRequireLoginGarbageToken(t *testing.T) {
	g, _ := newGuard(t)

	err := call(g.RequireLogin, &http.Cookie{Name: token.AccessCookie, Value: "not-a-jwt"})
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestRequireLoginHappyPath(t *testing.T) {
	g, sessions := newGuard(t)

	user, err := sessions.Login(t.Context(), "user@techstore.cu", "user123")
	require.NoError(t, err)

	require.NoError(t, call(g.RequireLogin, cookieFor(t, user)))
}

func TestRequireLoginAfterLogout(t *testing.T) {
	g, sessions := newGuard(t)

	user, err := sessions.Login(t.Context(), "user@techstore.cu", "user123")
	require.NoError(t, err)
	ck := cookieFor(t, user)
	sessions.Logout()

	// A valid token alone is not enough once the session ended.
	err = call(g.RequireLogin, ck)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestAdminOnlyRejectsUser(t *testing.T) {
	g, sessions := newGuard(t)

	user, err := sessions.Login(t.Context(), "user@techstore.cu", "user123")
	require.NoError(t, err)

	err = call(g.AdminOnly, cookieFor(t, user))
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusForbidden, he.Code)
}

func TestAdminOnlyAllowsAdmin(t *testing.T) {
	g, sessions := newGuard(t)

	admin, err := sessions.Login(t.Context(), "admin@techstore.cu", "admin123")
	require.NoError(t, err)

	require.NoError(t, call(g.AdminOnly, cookieFor(t, admin)))
}

func TestExpiredTokenRejected(t *testing.T) {
	g, sessions := newGuard(t)

	user, err := sessions.Login(t.Context(), "user@techstore.cu", "user123")
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := expired.SignedString(testSecret)
	require.NoError(t, err)

	err = call(g.RequireLogin, &http.Cookie{Name: token.AccessCookie, Value: signed})
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, he.Code)
}
