package controllerImp

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"agriai/pkg/apperr"
	"agriai/pkg/field/controller"
	"agriai/pkg/field/service"
	"agriai/pkg/middleware"
)

const notFound = "Field not found"

type FieldCtrl struct {
	svc service.FieldService
	log *zap.Logger
}

var _ controller.FieldController = (*FieldCtrl)(nil)

func New(svc service.FieldService, log *zap.Logger) *FieldCtrl { return &FieldCtrl{svc: svc, log: log} }

func (h *FieldCtrl) List(c echo.Context) error {
	fields, err := h.svc.ListFields(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return apperr.Write(c, h.log, err, notFound, "Failed to fetch fields")
	}
	return c.JSON(http.StatusOK, fields)
}

func (h *FieldCtrl) Create(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return apperr.Write(c, h.log, err, notFound, "Failed to create field")
	}
	f, err := h.svc.CreateField(c.Request().Context(), middleware.UserID(c), body)
	if err != nil {
		return apperr.Write(c, h.log, err, notFound, "Failed to create field")
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *FieldCtrl) Patch(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return apperr.Write(c, h.log, err, notFound, "Failed to update field")
	}
	f, err := h.svc.UpdateField(c.Request().Context(), middleware.UserID(c), c.Param("id"), body)
	if err != nil {
		return apperr.Write(c, h.log, err, notFound, "Failed to update field")
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FieldCtrl) Delete(c echo.Context) error {
	if err := h.svc.DeleteField(c.Request().Context(), middleware.UserID(c), c.Param("id")); err != nil {
		return apperr.Write(c, h.log, err, notFound, "Failed to delete field")
	}
	return c.NoContent(http.StatusNoContent)
}
