package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/ArowuTest/committee-manager/internal/models"
	"github.com/ArowuTest/committee-manager/internal/services"
	"github.com/ArowuTest/committee-manager/internal/services/mocks"
)

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		mockSetup      func(*mocks.MockAuthService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success",
			body: `{"username": "admin", "password": "letmein"}`,
			mockSetup: func(m *mocks.MockAuthService) {
				m.EXPECT().Login(gomock.Any(), &models.LoginRequest{Username: "admin", Password: "letmein"}).Return("signed-token", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"token":"signed-token"`,
		},
		{
			name: "bad credentials",
			body: `{"username": "admin", "password": "nope"}`,
			mockSetup: func(m *mocks.MockAuthService) {
				m.EXPECT().Login(gomock.Any(), gomock.Any()).Return("", services.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "token signing failure",
			body: `{"username": "admin", "password": "letmein"}`,
			mockSetup: func(m *mocks.MockAuthService) {
				m.EXPECT().Login(gomock.Any(), gomock.Any()).Return("", errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "missing password",
			body:           `{"username": "admin"}`,
			mockSetup:      func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockAuthService(ctrl)
			tt.mockSetup(svc)

			r := gin.New()
			r.POST("/auth/login", NewAuthHandler(svc).Login)

			w := doJSON(r, http.MethodPost, "/auth/login", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
		})
	}
}
