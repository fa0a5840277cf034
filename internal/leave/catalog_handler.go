package leave

import (
	"net/http"
	"strconv"

	"github.com/sohan418/leave-management-backend/internal/shared/apperror"
	"github.com/sohan418/leave-management-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the leave-type catalog and the holiday calendar.
type CatalogHandler struct {
	types    LeaveTypeService
	holidays HolidayService
	logger   *zap.Logger
}

func NewCatalogHandler(types LeaveTypeService, holidays HolidayService, logger ...*zap.Logger) *CatalogHandler {
	l := zap.L().Named("leave.catalog.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.catalog.handler")
	}
	return &CatalogHandler{types: types, holidays: holidays, logger: l}
}

func (h *CatalogHandler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("catalog request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *CatalogHandler) ListLeaveTypes(c *gin.Context) {
	var (
		resp []LeaveTypeResponse
		err  error
	)
	if c.Query("include_inactive") == "true" {
		resp, err = h.types.ListAll(c.Request.Context())
	} else {
		resp, err = h.types.ListActive(c.Request.Context())
	}
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *CatalogHandler) CreateLeaveType(c *gin.Context) {
	var req CreateLeaveTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("create leave type validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.types.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *CatalogHandler) UpdateLeaveType(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		h.writeServiceError(c, apperror.InvalidField("id"))
		return
	}

	var req UpdateLeaveTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("update leave type validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.types.Update(c.Request.Context(), uint(id), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *CatalogHandler) ListHolidays(c *gin.Context) {
	year := 0
	if v := c.Query("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 2020 || parsed > 2100 {
			h.writeServiceError(c, apperror.InvalidField("year"))
			return
		}
		year = parsed
	}

	resp, err := h.holidays.List(c.Request.Context(), year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *CatalogHandler) CreateHoliday(c *gin.Context) {
	var req CreateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("create holiday validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.holidays.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *CatalogHandler) DeleteHoliday(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		h.writeServiceError(c, apperror.InvalidField("id"))
		return
	}

	if err := h.holidays.Delete(c.Request.Context(), uint(id)); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
