package handler

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/stemsi/school-api/internal/config"
	"github.com/stemsi/school-api/internal/repository"
	"github.com/stemsi/school-api/internal/response"
)

const (
	maxListedCollections = 10
	maxErrorDetail       = 50
)

// SystemHandler answers liveness and storage diagnostics. None of its
// endpoints fail because of storage errors.
type SystemHandler struct {
	repo      repository.DocumentRepository
	cfg       *config.Config
	startTime time.Time
	log       zerolog.Logger
}

func NewSystemHandler(repo repository.DocumentRepository, cfg *config.Config, log zerolog.Logger) *SystemHandler {
	return &SystemHandler{
		repo:      repo,
		cfg:       cfg,
		startTime: time.Now(),
		log:       log.With().Str("component", "system_handler").Logger(),
	}
}

// Root godoc
// GET /
func (h *SystemHandler) Root(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"message": "School Management API is running"})
}

type diagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Diagnostics godoc
// GET /test
// Reports whether storage is reachable and which settings are present.
// Configuration values themselves are never echoed back.
func (h *SystemHandler) Diagnostics(c *gin.Context) {
	d := diagnostics{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if h.repo.Available() {
		d.Database = "✅ Available"
		d.ConnectionStatus = "Connected"

		names, err := h.repo.CollectionNames(c.Request.Context())
		if err != nil {
			h.log.Warn().Err(err).Msg("collection listing failed")
			d.Database = "⚠️  Connected but Error: " + truncate(err.Error(), maxErrorDetail)
		} else {
			if len(names) > maxListedCollections {
				names = names[:maxListedCollections]
			}
			d.Collections = names
			d.Database = "✅ Connected & Working"
		}
	} else {
		d.Database = "⚠️  Available but not initialized"
	}

	d.DatabaseURL = setMark(h.cfg.DatabaseURLSet())
	d.DatabaseName = setMark(h.cfg.DatabaseNameSet())

	response.Success(c, http.StatusOK, d)
}

// Health godoc
// GET /health
// Pings storage without touching any content collection.
func (h *SystemHandler) Health(c *gin.Context) {
	storage := "connected"
	if err := h.repo.Ping(c.Request.Context()); err != nil {
		h.log.Warn().Err(err).Msg("storage ping failed")
		storage = "unavailable"
	}

	response.Success(c, http.StatusOK, gin.H{
		"status":     "ok",
		"storage":    storage,
		"uptime":     formatDuration(time.Since(h.startTime)),
		"go_version": runtime.Version(),
	})
}

// ---------- Helpers ----------

func setMark(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func formatDuration(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}
	return fmt.Sprintf("%dm %ds", minutes, seconds)
}
