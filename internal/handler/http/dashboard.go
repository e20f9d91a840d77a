package http

import (
	"log/slog"
	"net/http"

	"github.com/distrohub/distro-backend-go/internal/domain/dashboard"
	"github.com/distrohub/distro-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// Summary implements DashboardHandler.
func (h *DashboardHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboardService.Summary(r.Context())
	if err != nil {
		slog.Error("Dashboard summary service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}
