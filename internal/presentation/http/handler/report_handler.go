package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/phonehub/phonehub-api/internal/application/service"
	"github.com/phonehub/phonehub-api/internal/presentation/http/dto/request"
	"github.com/phonehub/phonehub-api/internal/presentation/http/dto/response"
	"github.com/phonehub/phonehub-api/pkg/utils"
)

// ReportHandler handles sales report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// resolveSubject returns whose report to build. Admins may pass user_id to
// inspect another account; everyone else gets their own report.
func (h *ReportHandler) resolveSubject(c *gin.Context, requested string) (uuid.UUID, bool) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return uuid.Nil, false
	}

	if requested != "" {
		if !IsAdmin(c) {
			response.Forbidden(c, "Only admins can view other users' reports")
			return uuid.Nil, false
		}
		id, err := utils.ParseUUID(requested)
		if err != nil {
			response.BadRequest(c, "Invalid user ID")
			return uuid.Nil, false
		}
		return id, true
	}

	return *userID, true
}

// Weekly builds the weekly sales report
// @Summary Weekly Report
// @Description Aggregate a week of sales running week_start through the six
// @Description days that follow; empty means the current week starting Monday.
// @Tags reports
// @Produce json
// @Param week_start query string false "First day of the week (YYYY-MM-DD)"
// @Param user_id query string false "Subject user (admin only)"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /reports/weekly [get]
func (h *ReportHandler) Weekly(c *gin.Context) {
	var req request.WeeklyReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	subject, ok := h.resolveSubject(c, req.UserID)
	if !ok {
		return
	}

	report, err := h.reportService.GetWeeklyReport(c.Request.Context(), subject, req.WeekStart)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Weekly report generated", report)
}

// Monthly builds the monthly sales report
// @Summary Monthly Report
// @Description Aggregate a calendar month of sales. Month is YYYY-MM; empty
// @Description means the current month.
// @Tags reports
// @Produce json
// @Param month query string false "Month (YYYY-MM)"
// @Param user_id query string false "Subject user (admin only)"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /reports/monthly [get]
func (h *ReportHandler) Monthly(c *gin.Context) {
	var req request.MonthlyReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	subject, ok := h.resolveSubject(c, req.UserID)
	if !ok {
		return
	}

	report, err := h.reportService.GetMonthlyReport(c.Request.Context(), subject, req.Month)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Monthly report generated", report)
}
