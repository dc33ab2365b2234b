package controllerImp

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"agriai/pkg/apperr"
	"agriai/pkg/catalog"
	catalogCtrl "agriai/pkg/catalog/controllerImp"
	"agriai/pkg/export"
	fieldSvc "agriai/pkg/field/service"
	livestockSvc "agriai/pkg/livestock/service"
	"agriai/pkg/middleware"
)

const failed = "Failed to export farm"

type ExportCtrl struct {
	cat       *catalog.Catalog
	fields    fieldSvc.FieldService
	livestock livestockSvc.LivestockService
	log       *zap.Logger
}

func New(cat *catalog.Catalog, fields fieldSvc.FieldService, livestock livestockSvc.LivestockService, log *zap.Logger) *ExportCtrl {
	return &ExportCtrl{cat: cat, fields: fields, livestock: livestock, log: log}
}

// Farm streams the caller's fields and livestock as farm.xlsx.
func (h *ExportCtrl) Farm(c echo.Context) error {
	ctx := c.Request().Context()
	uid := middleware.UserID(c)

	fields, err := h.fields.ListFields(ctx, uid)
	if err != nil {
		return apperr.Write(c, h.log, err, failed, failed)
	}
	groups, err := h.livestock.ListLivestock(ctx, uid)
	if err != nil {
		return apperr.Write(c, h.log, err, failed, failed)
	}
	x, err := export.Workbook(h.cat, fields, groups, catalogCtrl.RequestLangs(c)...)
	if err != nil {
		return apperr.Write(c, h.log, err, failed, failed)
	}
	defer x.Close()

	var buf bytes.Buffer
	if err := x.Write(&buf); err != nil {
		return apperr.Write(c, h.log, err, failed, failed)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="farm.xlsx"`)
	return c.Blob(http.StatusOK, export.ContentType, buf.Bytes())
}
