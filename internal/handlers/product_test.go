package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListProducts(t *testing.T) {
	env := newTestEnv(t)

	rec, _, c := env.doJSONRequest(http.MethodGet, "/api/v1/products?page=1&size=2", nil)
	require.NoError(t, env.Pr.List(c))
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody(t, rec)
	items := resp["items"].([]any)
	require.Len(t, items, 2)

	meta := resp["meta"].(map[string]any)
	require.Equal(t, float64(4), meta["total"])
	require.Equal(t, float64(2), meta["total_pages"])
	require.Equal(t, true, meta["has_next"])
	require.Equal(t, false, meta["has_prev"])
}

func TestGetProductNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, _, c := env.doJSONRequest(http.MethodGet, "/api/v1/products/999", nil)
	c.SetParamNames("id")
	c.SetParamValues("999")
	he := httpErr(t, env.Pr.Get(c))
	require.Equal(t, http.StatusNotFound, he.Code)
}

func TestCreateProductValidation(t *testing.T) {
	env := newTestEnv(t)

	_, _, c := env.doJSONRequest(http.MethodPost, "/api/v1/admin/products", map[string]any{
		"name":     "Tablet",
		"category": "gadget",
		"price":    100,
	})
	he := httpErr(t, env.Pr.Create(c))
	require.Equal(t, http.StatusBadRequest, he.Code)
}

func TestCreateAndDeleteProduct(t *testing.T) {
	env := newTestEnv(t)

	rec, _, c := env.doJSONRequest(http.MethodPost, "/api/v1/admin/products", map[string]any{
		"name":     "Tablet Pro",
		"category": "phone",
		"price":    300.0,
		"stock":    5,
	})
	require.NoError(t, env.Pr.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decodeBody(t, rec)
	id := created["id"]
	require.NotEmpty(t, id)

	recD, _, cD := env.doJSONRequest(http.MethodDelete, "/api/v1/admin/products/5", nil)
	cD.SetParamNames("id")
	cD.SetParamValues("5")
	require.NoError(t, env.Pr.Delete(cD))
	require.Equal(t, http.StatusNoContent, recD.Code)
}
