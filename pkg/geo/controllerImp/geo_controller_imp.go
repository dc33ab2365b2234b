package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agriai/pkg/apperr"
	"agriai/pkg/geo"
)

type GeoCtrl struct{}

func New() *GeoCtrl { return &GeoCtrl{} }

// Parse converts ?q= into the decimal strings accepted by the field API.
func (h *GeoCtrl) Parse(c echo.Context) error {
	p, err := geo.ParseDMS(c.QueryParam("q"))
	if err != nil {
		ve := &apperr.ValidationError{}
		ve.Add("q", err.Error())
		return c.JSON(http.StatusBadRequest, echo.Map{"error": ve.Errors})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"latitude":  geo.FormatDecimal(p.Latitude),
		"longitude": geo.FormatDecimal(p.Longitude),
	})
}
