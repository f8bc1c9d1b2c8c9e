package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ArowuTest/committee-manager/internal/models"
	"github.com/ArowuTest/committee-manager/internal/services"
	"github.com/ArowuTest/committee-manager/internal/services/mocks"
)

func newCommitteeRouter(h *CommitteeHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/committee", h.GetStatus)
	r.GET("/committee/members", h.GetMembers)
	r.POST("/committee/members", h.AddMember)
	r.POST("/committee/payments", h.CollectPayment)
	r.POST("/committee/draws", h.ConductLuckyDraw)
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCommitteeHandler_AddMember(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockSetup      func(*mocks.MockCommitteeService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success",
			body: `{"id": 1, "name": "Ali"}`,
			mockSetup: func(m *mocks.MockCommitteeService) {
				m.EXPECT().AddMember(1, "Ali").Return(models.NewMember(1, "Ali"), nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"name":"Ali"`,
		},
		{
			name: "id zero is accepted",
			body: `{"id": 0, "name": "Zed"}`,
			mockSetup: func(m *mocks.MockCommitteeService) {
				m.EXPECT().AddMember(0, "Zed").Return(models.NewMember(0, "Zed"), nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "committee full",
			body: `{"id": 6, "name": "Late"}`,
			mockSetup: func(m *mocks.MockCommitteeService) {
				m.EXPECT().AddMember(6, "Late").Return(models.Member{}, services.ErrCapacityExceeded)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   "Committee is full",
		},
		{
			name: "empty name is accepted",
			body: `{"id": 1, "name": ""}`,
			mockSetup: func(m *mocks.MockCommitteeService) {
				m.EXPECT().AddMember(1, "").Return(models.NewMember(1, ""), nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing id",
			body:           `{"name": "Ali"}`,
			mockSetup:      func(m *mocks.MockCommitteeService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed json",
			body:           `{"id": `,
			mockSetup:      func(m *mocks.MockCommitteeService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockCommitteeService(ctrl)
			tt.mockSetup(svc)

			w := doJSON(newCommitteeRouter(NewCommitteeHandler(svc)), http.MethodPost, "/committee/members", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestCommitteeHandler_CollectPayment(t *testing.T) {
	paid := models.NewMember(1, "Ali")
	paid.MarkPaid()

	tests := []struct {
		name           string
		body           string
		mockSetup      func(*mocks.MockCommitteeService)
		expectedStatus int
	}{
		{
			name: "success",
			body: `{"memberId": 1, "amount": 1000}`,
			mockSetup: func(m *mocks.MockCommitteeService) {
				m.EXPECT().CollectPayment(1, 1000).Return(paid, nil)
				m.EXPECT().UnitPrice().Return(1000)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "wrong amount",
			body: `{"memberId": 1, "amount": 500}`,
			mockSetup: func(m *mocks.MockCommitteeService) {
				m.EXPECT().CollectPayment(1, 500).Return(models.Member{}, fmt.Errorf("%w: got 500, want 1000", services.ErrInvalidAmount))
				m.EXPECT().UnitPrice().Return(1000)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown member",
			body: `{"memberId": 9, "amount": 1000}`,
			mockSetup: func(m *mocks.MockCommitteeService) {
				m.EXPECT().CollectPayment(9, 1000).Return(models.Member{}, services.ErrMemberNotFound)
				m.EXPECT().UnitPrice().Return(1000)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "missing amount",
			body:           `{"memberId": 1}`,
			mockSetup:      func(m *mocks.MockCommitteeService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockCommitteeService(ctrl)
			tt.mockSetup(svc)

			w := doJSON(newCommitteeRouter(NewCommitteeHandler(svc)), http.MethodPost, "/committee/payments", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestCommitteeHandler_ConductLuckyDraw(t *testing.T) {
	t.Run("winner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockCommitteeService(ctrl)
		winner := models.NewMember(1, "Ali")
		winner.MarkPaid()
		svc.EXPECT().ConductLuckyDraw().Return(models.DrawResult{ID: "draw-1", Winner: winner, EligibleCount: 1}, nil)

		w := doJSON(newCommitteeRouter(NewCommitteeHandler(svc)), http.MethodPost, "/committee/draws", "")
		require.Equal(t, http.StatusOK, w.Code)

		var result models.DrawResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.Equal(t, "draw-1", result.ID)
		assert.Equal(t, "Ali", result.Winner.Name)
		assert.Equal(t, models.PaymentStatusPaid, result.Winner.PaymentStatus)
	})

	t.Run("no eligible members", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockCommitteeService(ctrl)
		svc.EXPECT().ConductLuckyDraw().Return(models.DrawResult{}, services.ErrNoEligibleMembers)

		w := doJSON(newCommitteeRouter(NewCommitteeHandler(svc)), http.MethodPost, "/committee/draws", "")
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "No paid members")
	})
}

func TestCommitteeHandler_Reads(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockCommitteeService(ctrl)
	members := []models.Member{models.NewMember(1, "Ali"), models.NewMember(2, "Sara")}
	svc.EXPECT().Status().Return(models.CommitteeStatus{Name: "Circle", Capacity: 5, UnitPrice: 1000, Members: members})
	svc.EXPECT().MemberStatus().Return(members)

	r := newCommitteeRouter(NewCommitteeHandler(svc))

	w := doJSON(r, http.MethodGet, "/committee", "")
	require.Equal(t, http.StatusOK, w.Code)
	var status models.CommitteeStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, "Circle", status.Name)
	assert.Equal(t, 5, status.Capacity)
	assert.Len(t, status.Members, 2)

	w = doJSON(r, http.MethodGet, "/committee/members", "")
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Members []models.Member `json:"members"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, members, body.Members)
}
