package controllerImp

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"agriai/pkg/apperr"
	"agriai/pkg/chat/controller"
	"agriai/pkg/chat/service"
	"agriai/pkg/middleware"
	"agriai/pkg/validation"
)

const failed = "Failed to get AI response"

type ChatCtrl struct {
	svc service.ChatService
	log *zap.Logger
}

var _ controller.ChatController = (*ChatCtrl)(nil)

func New(svc service.ChatService, log *zap.Logger) *ChatCtrl { return &ChatCtrl{svc: svc, log: log} }

func (h *ChatCtrl) Chat(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return apperr.Write(c, h.log, err, failed, failed)
	}
	req, err := validation.ParseChatRequest(body)
	if err != nil {
		return apperr.Write(c, h.log, err, failed, failed)
	}
	reply, err := h.svc.Reply(c.Request().Context(), middleware.UserID(c), req)
	if err != nil {
		return apperr.Write(c, h.log, err, failed, failed)
	}
	return c.JSON(http.StatusOK, echo.Map{"reply": reply})
}
