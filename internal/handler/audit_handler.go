package handler

import (
	"errors"
	"net/http"

	"gifttax/internal/middleware"
	"gifttax/internal/service"
	"gifttax/pkg/pagination"
	"gifttax/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	auditService service.AuditService
	jwtSecret    []byte
}

func NewAuditHandler(auditService service.AuditService, jwtSecret []byte) *AuditHandler {
	return &AuditHandler{auditService: auditService, jwtSecret: jwtSecret}
}

func (h *AuditHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/api/audit-logs")
	group.Use(middleware.RequireRole(h.jwtSecret, "admin", "manager"))
	{
		group.GET("", h.GetAuditLogs)
	}
}

// GetAuditLogs lists calculation and law table audit entries, newest first
// @Summary      Get audit logs
// @Description  Paginated calculation and law table reload history
// @Tags         audit
// @Security     BearerAuth
// @Produce      json
// @Param        action query     string  false  "CALCULATE_GIFT_TAX or RELOAD_LAW_TABLE"
// @Param        page   query     int     false  "Page number (default 1)"
// @Param        limit  query     int     false  "Number of items per page (default 20)"
// @Success      200    {object}  response.Response{data=object}
// @Failure      503    {object}  response.Response
// @Router       /api/audit-logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	params := pagination.Parse(c)

	logs, total, err := h.auditService.GetAuditLogs(c.Request.Context(), c.Query("action"), params.Page, params.Limit)
	if errors.Is(err, service.ErrAuditDisabled) {
		c.JSON(http.StatusServiceUnavailable, response.Error(http.StatusServiceUnavailable, err.Error()))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to retrieve audit logs: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"logs":  logs,
		"total": total,
		"page":  params.Page,
		"limit": params.Limit,
	}))
}
