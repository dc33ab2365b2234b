package controllerImp

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const pingTimeout = 800 * time.Millisecond

var appStart = time.Now()

// Checker is an optional dependency probed by /health next to the database.
type Checker interface {
	Check(ctx context.Context) error
}

type HealthCtrl struct {
	db     *gorm.DB
	extras map[string]Checker
}

func NewHealthCtrl(db *gorm.DB, extras map[string]Checker) *HealthCtrl {
	return &HealthCtrl{db: db, extras: extras}
}

type sub struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), pingTimeout)
	defer cancel()

	checks := map[string]sub{"database": h.pingDB(ctx)}
	names := make([]string, 0, len(h.extras))
	for name := range h.extras {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := h.extras[name].Check(ctx); err != nil {
			checks[name] = sub{Err: err.Error()}
		} else {
			checks[name] = sub{OK: true}
		}
	}

	allOK := true
	for _, s := range checks {
		allOK = allOK && s.OK
	}
	status := http.StatusOK
	if !allOK {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, echo.Map{
		"status":     echo.Map{"ok": allOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks":     checks,
		"time":       time.Now().Format(time.RFC3339),
	})
}

func (h *HealthCtrl) pingDB(ctx context.Context) sub {
	if h.db == nil {
		return sub{Err: "gorm db is nil"}
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return sub{Err: "db.DB(): " + err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return sub{Err: "ping: " + err.Error()}
	}
	return sub{OK: true}
}
