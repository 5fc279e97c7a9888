package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ydalvarez/techstore/internal/cart"
	"github.com/ydalvarez/techstore/internal/catalog"
	"github.com/ydalvarez/techstore/internal/checkout"
	"github.com/ydalvarez/techstore/internal/events"
	"github.com/ydalvarez/techstore/internal/models"
	"github.com/ydalvarez/techstore/internal/orders"
	"github.com/ydalvarez/techstore/internal/prefs"
	"github.com/ydalvarez/techstore/internal/session"
	"github.com/ydalvarez/techstore/internal/view"
)

type testEnv struct {
	E        *echo.Echo
	DB       *gorm.DB
	Sessions *session.Store
	Cart     *cart.Store
	Catalog  *catalog.Service

	A  *AuthHandler
	C  *CartHandler
	K  *CheckoutHandler
	O  *OrderHandler
	N  *NavHandler
	P  *PrefsHandler
	Pr *ProductHandler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Product{},
		&models.Order{}, &models.OrderLine{},
		&models.Preference{},
	))

	sessions := session.NewStore(db)
	require.NoError(t, sessions.Seed(t.Context()))

	cat := catalog.NewService(db)
	require.NoError(t, cat.Seed(t.Context()))

	cartStore := cart.NewStore()
	prod := events.NewProducer(nil)
	flow := checkout.NewFlow(db, cartStore, prod)
	notices := view.NewNotices(time.Minute)
	t.Cleanup(notices.Close)

	secret := []byte("test-secret")

	return &testEnv{
		E:        echo.New(),
		DB:       db,
		Sessions: sessions,
		Cart:     cartStore,
		Catalog:  cat,
		A:        &AuthHandler{Sessions: sessions, JWTSecret: secret, Producer: prod},
		C:        &CartHandler{Cart: cartStore, Catalog: cat, Producer: prod},
		K:        &CheckoutHandler{Flow: flow, Sessions: sessions},
		O:        &OrderHandler{Orders: orders.NewService(db), Sessions: sessions},
		N:        &NavHandler{Sessions: sessions, Notices: notices},
		P:        &PrefsHandler{Prefs: prefs.NewService(db)},
		Pr:       &ProductHandler{Catalog: cat, Producer: prod},
	}
}

// doJSONRequest builds an echo context for calling a handler directly.
func (env *testEnv) doJSONRequest(method, path string, payload any, cookies ...*http.Cookie) (*httptest.ResponseRecorder, *http.Request, echo.Context) {
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, req, c
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func httpErr(t *testing.T, err error) *echo.HTTPError {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %T", err)
	return he
}
