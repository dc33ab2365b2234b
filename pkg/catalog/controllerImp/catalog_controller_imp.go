package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agriai/pkg/catalog"
)

type CatalogCtrl struct{ c *catalog.Catalog }

func New(c *catalog.Catalog) *CatalogCtrl { return &CatalogCtrl{c: c} }

// Get returns every crop and livestock kind labelled in the caller's language.
func (h *CatalogCtrl) Get(c echo.Context) error {
	langs := RequestLangs(c)
	return c.JSON(http.StatusOK, echo.Map{
		"cropTypes":      h.c.CropTypes(langs...),
		"livestockTypes": h.c.LivestockTypes(langs...),
	})
}

// RequestLangs returns the ?lang= value followed by the Accept-Language header.
func RequestLangs(c echo.Context) []string {
	var langs []string
	if l := c.QueryParam("lang"); l != "" {
		langs = append(langs, l)
	}
	if al := c.Request().Header.Get("Accept-Language"); al != "" {
		langs = append(langs, al)
	}
	return langs
}
