package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ydalvarez/techstore/internal/checkout"
	"github.com/ydalvarez/techstore/internal/models"
)

func (env *testEnv) loginAs(t *testing.T, email, password string) {
	t.Helper()
	_, _, c := env.doJSONRequest(http.MethodPost, "/api/v1/login", map[string]string{
		"email":    email,
		"password": password,
	})
	require.NoError(t, env.A.Login(c))
}

func (env *testEnv) addProduct(t *testing.T, id uint) {
	t.Helper()
	_, _, c := env.doJSONRequest(http.MethodPost, "/api/v1/cart", map[string]uint{"product_id": id})
	require.NoError(t, env.C.AddItem(c))
}

func TestProceedEmptyCart(t *testing.T) {
	env := newTestEnv(t)

	_, _, c := env.doJSONRequest(http.MethodPost, "/api/v1/checkout/proceed", nil)
	he := httpErr(t, env.K.Proceed(c))
	require.Equal(t, http.StatusBadRequest, he.Code)
}

func TestConfirmRequiresSession(t *testing.T) {
	env := newTestEnv(t)
	env.addProduct(t, 1)

	_, _, cp := env.doJSONRequest(http.MethodPost, "/api/v1/checkout/proceed", nil)
	require.NoError(t, env.K.Proceed(cp))

	_, _, c := env.doJSONRequest(http.MethodPost, "/api/v1/checkout/confirm", map[string]string{"reference": "TM-1"})
	he := httpErr(t, env.K.Confirm(c))
	require.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestCheckoutHappyPath(t *testing.T) {
	env := newTestEnv(t)
	env.loginAs(t, "user@techstore.cu", "user123")
	env.addProduct(t, 1)
	env.addProduct(t, 1)

	rec, _, cp := env.doJSONRequest(http.MethodPost, "/api/v1/checkout/proceed", nil)
	require.NoError(t, env.K.Proceed(cp))
	require.Equal(t, http.StatusOK, rec.Code)

	_, _, cm := env.doJSONRequest(http.MethodPost, "/api/v1/checkout/payment", map[string]string{
		"method": checkout.MethodTransfermovil,
	})
	require.NoError(t, env.K.SelectPayment(cm))

	recC, _, cc := env.doJSONRequest(http.MethodPost, "/api/v1/checkout/confirm", map[string]string{
		"reference": "TM-12345",
	})
	require.NoError(t, env.K.Confirm(cc))
	require.Equal(t, http.StatusCreated, recC.Code)

	// Cart empties and exactly one order lands in the registry.
	require.Zero(t, env.Cart.Len())

	var count int64
	require.NoError(t, env.DB.Model(&models.Order{}).Count(&count).Error)
	require.Equal(t, int64(1), count)

	var order models.Order
	require.NoError(t, env.DB.Preload("Lines").First(&order).Error)
	require.Equal(t, models.OrderStatusPending, order.Status)
	require.Equal(t, "TM-12345", order.PaymentReference)
	require.Len(t, order.Lines, 1)
	require.Equal(t, uint(2), order.Lines[0].Quantity)
}

func TestSelectPaymentUnknownMethod(t *testing.T) {
	env := newTestEnv(t)
	env.addProduct(t, 1)

	_, _, cp := env.doJSONRequest(http.MethodPost, "/api/v1/checkout/proceed", nil)
	require.NoError(t, env.K.Proceed(cp))

	_, _, c := env.doJSONRequest(http.MethodPost, "/api/v1/checkout/payment", map[string]string{
		"method": "paypal",
	})
	he := httpErr(t, env.K.SelectPayment(c))
	require.Equal(t, http.StatusBadRequest, he.Code)
}

func TestConfirmOutOfOrder(t *testing.T) {
	env := newTestEnv(t)
	env.loginAs(t, "user@techstore.cu", "user123")
	env.addProduct(t, 1)

	// Still reviewing, confirm must be rejected as a bad transition.
	_, _, c := env.doJSONRequest(http.MethodPost, "/api/v1/checkout/confirm", map[string]string{
		"reference": "TM-1",
	})
	he := httpErr(t, env.K.Confirm(c))
	require.Equal(t, http.StatusConflict, he.Code)
}

func TestResetReturnsToReviewing(t *testing.T) {
	env := newTestEnv(t)
	env.addProduct(t, 1)

	_, _, cp := env.doJSONRequest(http.MethodPost, "/api/v1/checkout/proceed", nil)
	require.NoError(t, env.K.Proceed(cp))

	rec, _, c := env.doJSONRequest(http.MethodPost, "/api/v1/checkout/reset", nil)
	require.NoError(t, env.K.Reset(c))

	resp := decodeBody(t, rec)
	require.Equal(t, string(checkout.StateReviewing), resp["state"])
}
