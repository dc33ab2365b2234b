package controllerImp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agriai/pkg/catalog"
)

func TestCatalogCtrl_Get(t *testing.T) {
	cat, err := catalog.New("ru")
	require.NoError(t, err)
	e := echo.New()
	e.GET("/api/catalog", New(cat).Get)

	req := httptest.NewRequest(http.MethodGet, "/api/catalog?lang=kk", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `{"value":"wheat","label":"Бидай"}`)
	assert.Contains(t, rec.Body.String(), `{"value":"sheep","label":"Қойлар"}`)
}

func TestCatalogCtrl_AcceptLanguage(t *testing.T) {
	cat, err := catalog.New("ru")
	require.NoError(t, err)
	e := echo.New()
	e.GET("/api/catalog", New(cat).Get)

	req := httptest.NewRequest(http.MethodGet, "/api/catalog", nil)
	req.Header.Set("Accept-Language", "en-GB,en;q=0.8")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `{"value":"potato","label":"Potato"}`)
}
