package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResolveUnknownTokenIsHome(t *testing.T) {
	anon := Session{}
	require.Equal(t, ScreenHome, Resolve("", anon).Screen)
	require.Equal(t, ScreenHome, Resolve("checkout", anon).Screen)
	require.Equal(t, ScreenHome, Resolve("??", anon).Screen)
}

func TestResolveNormalizesToken(t *testing.T) {
	anon := Session{}
	require.Equal(t, ScreenProducts, Resolve("#products", anon).Screen)
	require.Equal(t, ScreenCart, Resolve("  CART ", anon).Screen)
}

func TestAdminTokenNeverYieldsAdminForUsers(t *testing.T) {
	res := Resolve("admin", Session{Authenticated: true, Role: "user"})
	require.NotEqual(t, ScreenAdmin, res.Screen)
	require.True(t, res.AccessDenied)

	res = Resolve("admin", Session{})
	require.NotEqual(t, ScreenAdmin, res.Screen)
	require.True(t, res.AccessDenied)
}

func TestAdminTokenForAdmin(t *testing.T) {
	res := Resolve("admin", Session{Authenticated: true, Role: "admin"})
	require.Equal(t, ScreenAdmin, res.Screen)
	require.False(t, res.AccessDenied)
}

func TestLoginRedirectsWhenAuthenticated(t *testing.T) {
	s := Session{Authenticated: true, Role: "user"}

	res := Resolve("login", s)
	require.Equal(t, ScreenHome, res.Screen)
	require.True(t, res.AlreadyLoggedIn)

	res = Resolve("register", s)
	require.Equal(t, ScreenHome, res.Screen)
	require.True(t, res.AlreadyLoggedIn)
}

func TestLoginScreenForAnonymous(t *testing.T) {
	res := Resolve("login", Session{})
	require.Equal(t, ScreenLogin, res.Screen)
	require.False(t, res.AlreadyLoggedIn)
}

func TestNoticeAutoClears(t *testing.T) {
	n := NewNotices(20 * time.Millisecond)
	defer n.Close()

	n.Set("already logged in")
	require.Equal(t, "already logged in", n.Current())

	require.Eventually(t, func() bool { return n.Current() == "" },
		500*time.Millisecond, 5*time.Millisecond)
}

func TestNoticeNewerSetWins(t *testing.T) {
	n := NewNotices(30 * time.Millisecond)
	defer n.Close()

	n.Set("first")
	n.Set("second")
	require.Equal(t, "second", n.Current())

	// the first timer must not clear the second notice early
	time.Sleep(10 * time.Millisecond)
	require.Equal(t, "second", n.Current())
}

func TestNoticeCloseCancelsPendingClear(t *testing.T) {
	n := NewNotices(10 * time.Millisecond)
	n.Set("bye")
	n.Close()
	require.Equal(t, "", n.Current())

	// nothing fires into the closed holder
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, "", n.Current())
}
