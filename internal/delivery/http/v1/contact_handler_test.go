package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"go-blog-backend/internal/delivery/http/middleware"
	v1 "go-blog-backend/internal/delivery/http/v1"
	"go-blog-backend/internal/domain"
	"go-blog-backend/internal/usecase"
	"go-blog-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init()
	os.Exit(m.Run())
}

type MockContactUC struct {
	mock.Mock
}

func (m *MockContactUC) SendContactMessage(ctx context.Context, req *domain.ContactRequest) error {
	return m.Called(ctx, req).Error(0)
}

func newContactRouter(uc domain.ContactUsecase) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	v1.NewContactHandler(r.Group("/api/v1"), uc)
	return r
}

var contactIPSeq int

func postContact(r *gin.Engine, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	// Distinct client address per request keeps the rate limiter out of the way
	contactIPSeq++
	req.RemoteAddr = fmt.Sprintf("198.51.100.%d:40000", contactIPSeq)
	r.ServeHTTP(w, req)
	return w
}

func validContactBody() map[string]string {
	return map[string]string{
		"name":    "Jordan Reyes",
		"email":   "jordan@example.com",
		"subject": "Hello",
		"message": "This message is long enough to pass validation.",
	}
}

func TestSubmitContactSuccess(t *testing.T) {
	mockUC := new(MockContactUC)
	mockUC.On("SendContactMessage", mock.Anything, mock.AnythingOfType("*domain.ContactRequest")).Return(nil)

	w := postContact(newContactRouter(mockUC), validContactBody())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Message sent successfully")
}

func TestSubmitContactValidation(t *testing.T) {
	mockUC := new(MockContactUC)
	r := newContactRouter(mockUC)

	cases := []struct {
		name string
		body map[string]string
	}{
		{"missing name", map[string]string{"email": "a@b.com", "message": "long enough message here"}},
		{"bad email", map[string]string{"name": "A", "email": "not-an-email", "message": "long enough message here"}},
		{"short message", map[string]string{"name": "A", "email": "a@b.com", "message": "short"}},
		{"oversized message", map[string]string{"name": "A", "email": "a@b.com", "message": strings.Repeat("x", 1001)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postContact(r, tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "ValidationError")
		})
	}

	mockUC.AssertNotCalled(t, "SendContactMessage", mock.Anything, mock.Anything)
}

func TestSubmitContactMailerUnavailable(t *testing.T) {
	mockUC := new(MockContactUC)
	mockUC.On("SendContactMessage", mock.Anything, mock.Anything).Return(usecase.ErrMailerNotConfigured)

	w := postContact(newContactRouter(mockUC), validContactBody())

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "temporarily unavailable")
}

func TestSubmitContactProviderErrorIsOpaque(t *testing.T) {
	mockUC := new(MockContactUC)
	mockUC.On("SendContactMessage", mock.Anything, mock.Anything).
		Return(fmt.Errorf("resend: invalid api key sk_live_secret"))

	w := postContact(newContactRouter(mockUC), validContactBody())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to send message")
	// Provider internals never reach the client
	assert.NotContains(t, w.Body.String(), "resend")
	assert.NotContains(t, w.Body.String(), "api key")
}
