package v1

import (
	"errors"
	"net/http"

	"go-blog-backend/internal/delivery/http/middleware"
	"go-blog-backend/internal/delivery/http/response"
	"go-blog-backend/internal/domain"
	"go-blog-backend/internal/usecase"
	"go-blog-backend/pkg/apperror"
	"go-blog-backend/pkg/logger"
	"go-blog-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	// Public route, rate limited to 5 submissions per hour per address
	public.POST("/contact",
		middleware.RateLimitMiddleware(middleware.ContactRateLimitConfig()),
		handler.SubmitContact,
	)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Send a message through the contact form. This is a public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatValidationErrors(err)))
		return
	}

	if err := h.contactUC.SendContactMessage(c.Request.Context(), &req); err != nil {
		if errors.Is(err, usecase.ErrMailerNotConfigured) {
			c.Error(apperror.New(http.StatusServiceUnavailable, apperror.CodeServerError,
				"Contact service temporarily unavailable", err))
			return
		}
		// Provider detail stays server-side; the client sees an opaque code
		c.Error(apperror.New(http.StatusInternalServerError, apperror.CodeServerError,
			"Failed to send message. Please try again later.", err))
		return
	}

	response.Success(c, http.StatusOK, "Message sent successfully", nil)

	logger.Log.Info("Contact form submission processed", "name", req.Name, "email", req.Email)
}
