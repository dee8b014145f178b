package handlers

import (
	"net/http"

	"gestion_flota/internal/usecase"
	"gestion_flota/pkg"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the consolidated dashboard report. The report entity
// already carries the wire shape, so no response mapping is needed.

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

func (h *ReportHandler) GetDashboard(c *gin.Context) {
	report, err := h.usecase.BuildDashboard(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, report)
}
