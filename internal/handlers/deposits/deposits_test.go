package deposits

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/vfasacco/saccoledger/internal/domain"
	"github.com/vfasacco/saccoledger/internal/dto"
	depositservice "github.com/vfasacco/saccoledger/internal/service/depositservice"
	"github.com/vfasacco/saccoledger/pkg/auth"
)

func NewMock(t *testing.T) (*DepositHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedRequest(method, target string, body *bytes.Buffer, userID int) *http.Request {
	var r *http.Request
	if body == nil {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, body)
	}
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, userID))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Deposit starts pending",
			body: `{"member_id":1,"amount":100000,"method":"cash"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 1, 100000.0, "cash", 9, "").
					Return(&domain.Deposit{ID: 1, DepositNumber: "DEP-AB12CD34", MemberID: 1, Amount: 100000, Method: "cash", Status: "pending", CreatedAt: time.Now()}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          `{"member_id":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name: "Non-positive amount",
			body: `{"member_id":1,"amount":-5,"method":"cash"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 1, -5.0, "cash", 9, "").
					Return(nil, depositservice.ErrInvalidAmount)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: depositservice.ErrInvalidAmount.Error(),
		},
		{
			name: "Unknown method",
			body: `{"member_id":1,"amount":100000,"method":"barter"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 1, 100000.0, "barter", 9, "").
					Return(nil, depositservice.ErrInvalidMethod)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: depositservice.ErrInvalidMethod.Error(),
		},
		{
			name: "Member not found",
			body: `{"member_id":42,"amount":100000,"method":"cash"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 42, 100000.0, "cash", 9, "").
					Return(nil, depositservice.ErrMemberNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: depositservice.ErrMemberNotFound.Error(),
		},
		{
			name: "Internal server error",
			body: `{"member_id":1,"amount":100000,"method":"cash"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 1, 100000.0, "cash", 9, "").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := authedRequest(http.MethodPost, "/api/deposits", bytes.NewBufferString(tt.body), 9)
			w := httptest.NewRecorder()

			handler.Create(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestApproveHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Pending deposit approved",
			prepareMock: func() {
				approvedAt := time.Now()
				service.EXPECT().Approve(gomock.Any(), 1, 9).
					Return(&domain.Deposit{ID: 1, Status: "approved", ApprovedAt: &approvedAt}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Deposit not found",
			prepareMock: func() {
				service.EXPECT().Approve(gomock.Any(), 1, 9).
					Return(nil, depositservice.ErrDepositNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: depositservice.ErrDepositNotFound.Error(),
		},
		{
			name: "Deposit already resolved",
			prepareMock: func() {
				service.EXPECT().Approve(gomock.Any(), 1, 9).
					Return(nil, depositservice.ErrNotPending)
			},
			expectedCode:  http.StatusConflict,
			expectedError: depositservice.ErrNotPending.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := withURLParam(authedRequest(http.MethodPost, "/api/deposits/1/approve", nil, 9), "id", "1")
			w := httptest.NewRecorder()

			handler.Approve(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestRejectHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Pending deposit rejected", func(t *testing.T) {
		service.EXPECT().Reject(gomock.Any(), 1, 9).
			Return(&domain.Deposit{ID: 1, Status: "rejected"}, nil)

		r := withURLParam(authedRequest(http.MethodPost, "/api/deposits/1/reject", nil, 9), "id", "1")
		w := httptest.NewRecorder()

		handler.Reject(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.DepositResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Equal(t, "rejected", body.Status)
	})

	t.Run("Invalid deposit id", func(t *testing.T) {
		r := withURLParam(authedRequest(http.MethodPost, "/api/deposits/abc/reject", nil, 9), "id", "abc")
		w := httptest.NewRecorder()

		handler.Reject(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListPendingHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ListPending(gomock.Any()).Return([]domain.Deposit{
		{ID: 2, Status: "pending"},
		{ID: 1, Status: "pending"},
	}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/deposits/pending", nil)
	w := httptest.NewRecorder()

	handler.ListPending(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body []dto.DepositResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Len(t, body, 2)
}

func TestListByMemberHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ListByMember(gomock.Any(), 1).Return([]domain.Deposit{{ID: 1, MemberID: 1}}, nil)

	r := withURLParam(httptest.NewRequest(http.MethodGet, "/api/members/1/deposits", nil), "id", "1")
	w := httptest.NewRecorder()

	handler.ListByMember(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body []dto.DepositResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Len(t, body, 1)
}
