package controllerImp

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"agriai/pkg/apperr"
	"agriai/pkg/kb/controller"
	"agriai/pkg/kb/scrape"
	"agriai/pkg/kb/service"
	"agriai/pkg/validation"
)

const searchLimit = 6

type KBCtrl struct {
	s     service.KBService
	fetch *scrape.Fetcher
	log   *zap.Logger
}

var _ controller.KBController = (*KBCtrl)(nil)

func New(s service.KBService, fetch *scrape.Fetcher, log *zap.Logger) *KBCtrl {
	return &KBCtrl{s: s, fetch: fetch, log: log}
}

type ingestReq struct {
	Title     string `json:"title" validate:"required"`
	Tags      string `json:"tags"`
	Text      string `json:"text" validate:"required"`
	SourceURL string `json:"sourceUrl"`
}

type ingestURLReq struct {
	URL   string `json:"url" validate:"required,url"`
	Title string `json:"title"`
	Tags  string `json:"tags"`
}

func (h *KBCtrl) IngestText(c echo.Context) error {
	var req ingestReq
	if err := h.bind(c, &req); err != nil {
		return apperr.Write(c, h.log, err, "", "Failed to ingest document")
	}
	doc, n, err := h.s.UpsertDocument(c.Request().Context(),
		strings.TrimSpace(req.Title), strings.TrimSpace(req.Tags), req.Text, strings.TrimSpace(req.SourceURL))
	if err != nil {
		return apperr.Write(c, h.log, err, "", "Failed to ingest document")
	}
	return c.JSON(http.StatusCreated, echo.Map{"doc": doc, "chunks": n})
}

func (h *KBCtrl) IngestURL(c echo.Context) error {
	var req ingestURLReq
	if err := h.bind(c, &req); err != nil {
		return apperr.Write(c, h.log, err, "", "Failed to ingest page")
	}

	txt, title, err := h.fetch.Fetch(c.Request().Context(), req.URL)
	switch {
	case errors.Is(err, scrape.ErrDomainNotAllowed):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "Domain not allowed"})
	case err != nil:
		h.log.Warn("kb fetch", zap.String("url", req.URL), zap.Error(err))
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "Failed to fetch page"})
	}
	if req.Title != "" {
		title = req.Title
	}

	doc, n, err := h.s.UpsertDocument(c.Request().Context(), title, req.Tags, txt, req.URL)
	if err != nil {
		return apperr.Write(c, h.log, err, "", "Failed to ingest page")
	}
	return c.JSON(http.StatusCreated, echo.Map{"doc": doc, "chunks": n})
}

func (h *KBCtrl) Search(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		ve := &apperr.ValidationError{}
		ve.Add("q", "is required")
		return apperr.Write(c, h.log, ve, "", "")
	}
	hits, err := h.s.Search(c.Request().Context(), q, searchLimit)
	if err != nil {
		return apperr.Write(c, h.log, err, "", "Failed to search knowledge base")
	}
	return c.JSON(http.StatusOK, hits)
}

func (h *KBCtrl) List(c echo.Context) error {
	docs, err := h.s.ListDocuments(c.Request().Context())
	if err != nil {
		return apperr.Write(c, h.log, err, "", "Failed to list documents")
	}
	return c.JSON(http.StatusOK, docs)
}

func (h *KBCtrl) bind(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		ve := &apperr.ValidationError{}
		ve.Add("body", "must be a JSON object")
		return ve
	}
	return validation.Struct(dst)
}
