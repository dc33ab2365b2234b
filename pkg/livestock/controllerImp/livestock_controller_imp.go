package controllerImp

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"agriai/pkg/apperr"
	"agriai/pkg/livestock/controller"
	"agriai/pkg/livestock/service"
	"agriai/pkg/middleware"
)

const notFound = "Livestock not found"

type LivestockCtrl struct {
	svc service.LivestockService
	log *zap.Logger
}

var _ controller.LivestockController = (*LivestockCtrl)(nil)

func New(svc service.LivestockService, log *zap.Logger) *LivestockCtrl {
	return &LivestockCtrl{svc: svc, log: log}
}

func (h *LivestockCtrl) List(c echo.Context) error {
	groups, err := h.svc.ListLivestock(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return apperr.Write(c, h.log, err, notFound, "Failed to fetch livestock")
	}
	return c.JSON(http.StatusOK, groups)
}

func (h *LivestockCtrl) Create(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return apperr.Write(c, h.log, err, notFound, "Failed to create livestock")
	}
	l, err := h.svc.CreateLivestock(c.Request().Context(), middleware.UserID(c), body)
	if err != nil {
		return apperr.Write(c, h.log, err, notFound, "Failed to create livestock")
	}
	return c.JSON(http.StatusCreated, l)
}

func (h *LivestockCtrl) Patch(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return apperr.Write(c, h.log, err, notFound, "Failed to update livestock")
	}
	l, err := h.svc.UpdateLivestock(c.Request().Context(), middleware.UserID(c), c.Param("id"), body)
	if err != nil {
		return apperr.Write(c, h.log, err, notFound, "Failed to update livestock")
	}
	return c.JSON(http.StatusOK, l)
}

func (h *LivestockCtrl) Delete(c echo.Context) error {
	if err := h.svc.DeleteLivestock(c.Request().Context(), middleware.UserID(c), c.Param("id")); err != nil {
		return apperr.Write(c, h.log, err, notFound, "Failed to delete livestock")
	}
	return c.NoContent(http.StatusNoContent)
}
