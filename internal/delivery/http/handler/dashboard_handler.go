package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/velvetdk/marketplace-backend/internal/delivery/http/middleware"
	"github.com/velvetdk/marketplace-backend/internal/domain"
	"github.com/velvetdk/marketplace-backend/internal/usecase/dashboard"
	"github.com/velvetdk/marketplace-backend/internal/usecase/profile"
)

// DashboardHandler serves the independently fetched dashboard slices. Each
// endpoint degrades to a zero value on backend failure, so the dashboard can
// always render.
type DashboardHandler struct {
	dashboardUseCase *dashboard.DashboardUseCase
	profileUseCase   *profile.ProfileUseCase
}

func NewDashboardHandler(dashboardUseCase *dashboard.DashboardUseCase, profileUseCase *profile.ProfileUseCase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUseCase: dashboardUseCase,
		profileUseCase:   profileUseCase,
	}
}

// GetStats handles GET /dashboard/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	p, ok := h.callerProfile(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.dashboardUseCase.GetProfileStats(c.Request.Context(), p.ID))
}

// GetActivities handles GET /dashboard/activities
func (h *DashboardHandler) GetActivities(c *gin.Context) {
	p, ok := h.callerProfile(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"activities": h.dashboardUseCase.GetRecentActivities(c.Request.Context(), p.ID)})
}

// GetUpcomingBookings handles GET /dashboard/bookings/upcoming
func (h *DashboardHandler) GetUpcomingBookings(c *gin.Context) {
	p, ok := h.callerProfile(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": h.dashboardUseCase.GetUpcomingBookings(c.Request.Context(), p.ID)})
}

// GetBookingStats handles GET /dashboard/bookings/stats
func (h *DashboardHandler) GetBookingStats(c *gin.Context) {
	p, ok := h.callerProfile(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.dashboardUseCase.GetBookingStats(c.Request.Context(), p.ID))
}

func (h *DashboardHandler) callerProfile(c *gin.Context) (*domain.Profile, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return nil, false
	}

	p, err := h.profileUseCase.GetMyProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "profile not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get profile"})
		return nil, false
	}
	return p, true
}
