package view

import "strings"

type Screen string

const (
	ScreenHome     Screen = "home"
	ScreenProducts Screen = "products"
	ScreenCart     Screen = "cart"
	ScreenLogin    Screen = "login"
	ScreenRegister Screen = "register"
	ScreenAdmin    Screen = "admin"
)

// Session is the read-only view of the current identity the router needs.
type Session struct {
	Authenticated bool
	Role          string
}

// Resolution carries the resolved screen plus the rendering decisions the
// caller acts on: AccessDenied is not a navigable screen, and
// AlreadyLoggedIn asks the caller to surface a transient notice.
type Resolution struct {
	Screen          Screen `json:"screen"`
	AccessDenied    bool   `json:"access_denied"`
	AlreadyLoggedIn bool   `json:"already_logged_in"`
}

// Resolve maps a navigation token to a screen, gated by session state. It is
// pure: all mutation (notices, timers) belongs to the caller.
func Resolve(token string, s Session) Resolution {
	screen := normalize(token)

	if s.Authenticated && (screen == ScreenLogin || screen == ScreenRegister) {
		return Resolution{Screen: ScreenHome, AlreadyLoggedIn: true}
	}
	if screen == ScreenAdmin && s.Role != "admin" {
		return Resolution{Screen: ScreenHome, AccessDenied: true}
	}
	return Resolution{Screen: screen}
}

func normalize(token string) Screen {
	t := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(token), "#"))
	switch Screen(t) {
	case ScreenHome, ScreenProducts, ScreenCart, ScreenLogin, ScreenRegister, ScreenAdmin:
		return Screen(t)
	}
	return ScreenHome
}
