package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/velvetdk/marketplace-backend/internal/delivery/http/middleware"
	"github.com/velvetdk/marketplace-backend/internal/domain"
	"github.com/velvetdk/marketplace-backend/internal/usecase/advertisement"
	"github.com/velvetdk/marketplace-backend/internal/usecase/profile"
)

type AdvertisementHandler struct {
	adUseCase      *advertisement.AdvertisementUseCase
	profileUseCase *profile.ProfileUseCase
}

func NewAdvertisementHandler(adUseCase *advertisement.AdvertisementUseCase, profileUseCase *profile.ProfileUseCase) *AdvertisementHandler {
	return &AdvertisementHandler{
		adUseCase:      adUseCase,
		profileUseCase: profileUseCase,
	}
}

// statusResponse decorates the snapshot with its display string.
type statusResponse struct {
	*domain.AdvertisementStatus
	TimeUntilExpiry string `json:"time_until_expiry"`
}

// GetStatus handles GET /advertisement/status
func (h *AdvertisementHandler) GetStatus(c *gin.Context) {
	p, ok := h.callerProfile(c)
	if !ok {
		return
	}

	status := h.adUseCase.GetStatus(c.Request.Context(), p.ID)
	if status == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "advertisement status unavailable"})
		return
	}

	c.JSON(http.StatusOK, statusResponse{
		AdvertisementStatus: status,
		TimeUntilExpiry:     advertisement.FormatTimeUntilExpiry(status),
	})
}

// BumpRequest is the bump payload.
type BumpRequest struct {
	Type      string `json:"type" binding:"required,oneof=free paid credit"`
	PackageID string `json:"package_id" binding:"omitempty"`
}

// Bump handles POST /advertisement/bump
func (h *AdvertisementHandler) Bump(c *gin.Context) {
	p, ok := h.callerProfile(c)
	if !ok {
		return
	}

	var req BumpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result := h.adUseCase.Bump(c.Request.Context(), advertisement.BumpRequest{
		ProfileID: p.ID,
		Type:      domain.BumpType(req.Type),
		PackageID: req.PackageID,
	})

	if !result.Success {
		c.JSON(http.StatusUnprocessableEntity, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetPackages handles GET /advertisement/packages
func (h *AdvertisementHandler) GetPackages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"packages": h.adUseCase.Packages()})
}

func (h *AdvertisementHandler) callerProfile(c *gin.Context) (*domain.Profile, bool) {
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
