package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	store domain.AuditStore
}

func NewAuditLogsHandler(store domain.AuditStore) *AuditLogsHandler {
	return &AuditLogsHandler{store: store}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	f := domain.AuditFilter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Limit:  limit,
		Offset: (page - 1) * limit,
	}

	// --------------------------------------------------
	// Date range, "to" inclusive
	// --------------------------------------------------

	if from, err := models.ParseDate(c.Query("from")); err == nil {
		f.From = &from.Time
	}
	if to, err := models.ParseDate(c.Query("to")); err == nil {
		end := to.Time.Add(24 * time.Hour)
		f.To = &end
	}

	logs, total, err := h.store.ListAuditLogs(c.Request.Context(), f)
	if err != nil {
		httperr.FromError(c, err, "audit_list_failed")
		return
	}

	c.JSON(200, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}
