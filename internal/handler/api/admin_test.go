//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"travel-broker/internal/handler/api"
	resdto "travel-broker/internal/handler/dto/response"
	"travel-broker/internal/handler/middleware"
	"travel-broker/internal/usecase/commands"
	"travel-broker/tests/common/httptest"
	commandsmock "travel-broker/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAdminHandler_Reconcile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	mockReconcile := commandsmock.NewMockReconcileCommands(ctrl)
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.POST("/admin/reconcile", api.NewAdminHandler(mockReconcile).Reconcile)

	t.Run("returns report", func(t *testing.T) {
		advanced := uuid.New()
		mockReconcile.EXPECT().ReconcileStuckBookings(gomock.Any()).
			Return(&commands.ReconcileReport{Scanned: 2, Advanced: []uuid.UUID{advanced}}, nil)

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/admin/reconcile", nil, "")

		var res resdto.ReconcileResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &res)
		assert.Equal(t, 2, res.Scanned)
		assert.Equal(t, []uuid.UUID{advanced}, res.Advanced)
		assert.NotNil(t, res.Failed)
	})

	t.Run("failure", func(t *testing.T) {
		mockReconcile.EXPECT().ReconcileStuckBookings(gomock.Any()).Return(nil, errors.New("db down"))

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/admin/reconcile", nil, "")

		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Reconciliation failed")
	})
}

func TestProxyChatHandler_Render(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.POST("/proxy-chat/render", api.NewProxyChatHandler().Render)

	t.Run("renders message", func(t *testing.T) {
		body := map[string]any{
			"sender_role":  "agent",
			"content":      "file-123",
			"content_type": "photo",
			"chat_status":  "active",
			"agency_name":  "TravelCo",
			"language":     "ru",
		}

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/proxy-chat/render", body, "")

		var res resdto.ProxyChatResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &res)
		require.Contains(t, res.Text, "TravelCo")
		assert.Contains(t, res.Text, "[фото]")
		assert.NotContains(t, res.Text, "file-123")
	})

	t.Run("rejects unknown sender role", func(t *testing.T) {
		body := map[string]any{"sender_role": "robot", "chat_status": "active", "agency_name": "TravelCo"}

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/proxy-chat/render", body, "")

		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid request")
	})
}
