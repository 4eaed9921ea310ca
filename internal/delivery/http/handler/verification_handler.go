package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/velvetdk/marketplace-backend/internal/delivery/http/middleware"
	"github.com/velvetdk/marketplace-backend/internal/domain"
	"github.com/velvetdk/marketplace-backend/internal/usecase/verification"
)

type VerificationHandler struct {
	verificationUseCase *verification.VerificationUseCase
}

func NewVerificationHandler(verificationUseCase *verification.VerificationUseCase) *VerificationHandler {
	return &VerificationHandler{verificationUseCase: verificationUseCase}
}

// Access handles GET /verification/access. Query parameters mirror the policy
// options a caller may set: allow_skipped, redirect_to, show_prompt.
func (h *VerificationHandler) Access(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	opts := verification.DefaultOptions()
	if c.Query("allow_skipped") == "true" {
		opts.AllowSkipped = true
	}
	if redirect := c.Query("redirect_to"); redirect != "" {
		opts.RedirectTo = redirect
	}
	if c.Query("show_prompt") == "false" {
		opts.ShowPrompt = false
	}

	decision, err := h.verificationUseCase.Access(c.Request.Context(), userID, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to evaluate access"})
		return
	}

	c.JSON(http.StatusOK, decision)
}

// Skip handles POST /verification/skip
func (h *VerificationHandler) Skip(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	if err := h.verificationUseCase.Skip(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to record skip"})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// Submit handles POST /verification/submit
func (h *VerificationHandler) Submit(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	if err := h.verificationUseCase.Submit(c.Request.Context(), userID); err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to submit verification"})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
