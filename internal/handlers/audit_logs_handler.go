package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/slot-scheduler/internal/httperr"
	"github.com/BruksfildServices01/slot-scheduler/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

// AuditLogsHandler pages through the audit_logs table. It is only routed
// when the postgres driver is active.
type AuditLogsHandler struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewAuditLogsHandler(db *gorm.DB, log *zap.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{db: db, log: log}
}

type AuditLogQuery struct {
	Action   string
	Entity   string
	EntityID string
	ActorID  uint
	From     *time.Time
	To       *time.Time
	Page     int
	Limit    int
}

// parseAuditLogQuery defaults to page 1 with 50 rows, at
// most 200. Malformed dates are ignored.
func parseAuditLogQuery(c *gin.Context) AuditLogQuery {
	q := AuditLogQuery{
		Action:   c.Query("action"),
		Entity:   c.Query("entity"),
		EntityID: c.Query("entity_id"),
	}

	if v, err := strconv.ParseUint(c.Query("actor_id"), 10, 64); err == nil {
		q.ActorID = uint(v)
	}

	q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if q.Page <= 0 {
		q.Page = 1
	}
	q.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	if q.Limit <= 0 || q.Limit > 200 {
		q.Limit = 50
	}

	if from, err := time.Parse("2006-01-02", c.Query("from")); err == nil {
		q.From = &from
	}
	if to, err := time.Parse("2006-01-02", c.Query("to")); err == nil {
		end := to.Add(24 * time.Hour)
		q.To = &end
	}
	return q
}

func (q AuditLogQuery) apply(db *gorm.DB) *gorm.DB {
	if q.Action != "" {
		db = db.Where("action = ?", q.Action)
	}
	if q.Entity != "" {
		db = db.Where("entity = ?", q.Entity)
	}
	if q.EntityID != "" {
		db = db.Where("entity_id = ?", q.EntityID)
	}
	if q.ActorID != 0 {
		db = db.Where("actor_id = ?", q.ActorID)
	}
	if q.From != nil {
		db = db.Where("created_at >= ?", *q.From)
	}
	if q.To != nil {
		db = db.Where("created_at < ?", *q.To)
	}
	return db
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	q := parseAuditLogQuery(c)
	base := func() *gorm.DB {
		return q.apply(h.db.WithContext(c.Request.Context()).Model(&models.AuditLog{}))
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		h.log.Error("audit count failed", zap.Error(err))
		httperr.Internal(c, "audit_count_failed", "could not count audit logs")
		return
	}

	var logs []models.AuditLog
	if err := base().
		Order("created_at DESC").
		Limit(q.Limit).
		Offset((q.Page - 1) * q.Limit).
		Find(&logs).Error; err != nil {

		h.log.Error("audit list failed", zap.Error(err))
		httperr.Internal(c, "audit_list_failed", "could not list audit logs")
		return
	}
	if logs == nil {
		logs = []models.AuditLog{}
	}

	c.JSON(200, gin.H{
		"page":  q.Page,
		"limit": q.Limit,
		"total": total,
		"logs":  logs,
	})
}
