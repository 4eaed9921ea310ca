package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/velvetdk/marketplace-backend/internal/delivery/http/middleware"
	"github.com/velvetdk/marketplace-backend/internal/domain"
	"github.com/velvetdk/marketplace-backend/internal/usecase/booking"
	"github.com/velvetdk/marketplace-backend/internal/usecase/profile"
)

type BookingHandler struct {
	bookingUseCase *booking.BookingUseCase
	profileUseCase *profile.ProfileUseCase
}

func NewBookingHandler(bookingUseCase *booking.BookingUseCase, profileUseCase *profile.ProfileUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
		profileUseCase: profileUseCase,
	}
}

// UpdateStatusRequest carries the target booking state.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed completed declined cancelled"`
}

// UpdateStatus handles PUT /bookings/:id/status
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	if _, ok := middleware.UserID(c); !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	ok := h.bookingUseCase.UpdateStatus(c.Request.Context(), bookingID, domain.BookingStatus(req.Status))
	c.JSON(http.StatusOK, SuccessResponse{Success: ok})
}

// AvailabilitySlotRequest is one weekly window in the schedule payload.
type AvailabilitySlotRequest struct {
	Weekday  int    `json:"weekday" binding:"min=0,max=6"`
	OpensAt  string `json:"opens_at" binding:"required"`
	ClosesAt string `json:"closes_at" binding:"required"`
}

// SetAvailabilityRequest replaces the whole weekly schedule.
type SetAvailabilityRequest struct {
	Slots []AvailabilitySlotRequest `json:"slots" binding:"required,dive"`
}

// SetAvailability handles PUT /availability
func (h *BookingHandler) SetAvailability(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	p, err := h.profileUseCase.GetMyProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get profile"})
		return
	}

	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	slots := make([]domain.AvailabilitySlot, 0, len(req.Slots))
	for _, s := range req.Slots {
		slots = append(slots, domain.AvailabilitySlot{
			ProfileID: p.ID,
			Weekday:   s.Weekday,
			OpensAt:   s.OpensAt,
			ClosesAt:  s.ClosesAt,
		})
	}

	success := h.bookingUseCase.SetWeeklyAvailability(c.Request.Context(), p.ID, slots)
	c.JSON(http.StatusOK, SuccessResponse{Success: success})
}
