package wallets

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/GlebRadaev/loadermarket/internal/domain"
	"github.com/GlebRadaev/loadermarket/internal/dto"
	"github.com/GlebRadaev/loadermarket/pkg/auth"
	"github.com/GlebRadaev/loadermarket/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*WalletHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func decEq(s string) gomock.Matcher {
	want := decimal.RequireFromString(s)
	return gomock.Cond(func(x decimal.Decimal) bool { return x.Equal(want) })
}

func withUser(r *http.Request, userID int, role string) *http.Request {
	return r.WithContext(auth.WithUser(r.Context(), userID, role))
}

func TestGetWallets(t *testing.T) {
	handler, service := NewMock(t)
	updated := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody []dto.WalletResponseDTO
	}{
		{
			name: "Wallets found",
			prepareMock: func() {
				service.EXPECT().GetWallets(gomock.Any(), 1).Return([]domain.Wallet{{
					UserID:           1,
					Currency:         "USDT",
					AvailableBalance: decimal.RequireFromString("870.5"),
					EscrowBalance:    decimal.RequireFromString("130"),
					UpdatedAt:        updated,
				}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.WalletResponseDTO{{
				Currency:  "USDT",
				Available: decimal.RequireFromString("870.5"),
				Escrow:    decimal.RequireFromString("130"),
				UpdatedAt: updated,
			}},
		},
		{
			name: "No wallets",
			prepareMock: func() {
				service.EXPECT().GetWallets(gomock.Any(), 1).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.WalletResponseDTO{},
		},
		{
			name: "Storage failure",
			prepareMock: func() {
				service.EXPECT().GetWallets(gomock.Any(), 1).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withUser(httptest.NewRequest(http.MethodGet, "/api/wallets", nil), 1, "user")
			rr := httptest.NewRecorder()

			handler.GetWallets(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != nil {
				var resp []dto.WalletResponseDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				require.Len(t, resp, len(tt.expectedBody))
				for i := range resp {
					assert.Equal(t, tt.expectedBody[i].Currency, resp[i].Currency)
					assert.True(t, tt.expectedBody[i].Available.Equal(resp[i].Available))
					assert.True(t, tt.expectedBody[i].Escrow.Equal(resp[i].Escrow))
				}
			}
		})
	}
}

func TestGetWalletsUnauthorized(t *testing.T) {
	handler, _ := NewMock(t)

	rr := httptest.NewRecorder()
	handler.GetWallets(rr, httptest.NewRequest(http.MethodGet, "/api/wallets", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetEntries(t *testing.T) {
	handler, service := NewMock(t)
	orderID := 7

	service.EXPECT().ListEntries(gomock.Any(), 1, 20).Return([]domain.LedgerEntry{
		{ID: 3, Currency: "USDT", Kind: domain.EntryFreeze, Amount: decimal.RequireFromString("130"), OrderID: &orderID},
	}, nil)

	req := withUser(httptest.NewRequest(http.MethodGet, "/api/wallets/entries?limit=20", nil), 1, "user")
	rr := httptest.NewRecorder()
	handler.GetEntries(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp []dto.LedgerEntryResponseDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "freeze", resp[0].Kind)
	assert.Equal(t, &orderID, resp[0].OrderID)
	assert.Nil(t, resp[0].AdID)
}

func TestDeposit(t *testing.T) {
	handler, service := NewMock(t)
	admin := domain.Actor{ID: 9, Role: domain.RoleAdmin}

	tests := []struct {
		name          string
		role          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful deposit",
			role: "admin",
			body: `{"user_id":1,"currency":"USDT","amount":"1000"}`,
			prepareMock: func() {
				service.EXPECT().Deposit(gomock.Any(), admin, 1, "USDT", decEq("1000")).Return(&domain.Wallet{
					UserID:           1,
					Currency:         "USDT",
					AvailableBalance: decimal.RequireFromString("1000"),
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Non-positive amount",
			role: "admin",
			body: `{"user_id":1,"currency":"USDT","amount":"-5"}`,
			prepareMock: func() {
				service.EXPECT().Deposit(gomock.Any(), admin, 1, "USDT", decEq("-5")).
					Return(nil, fmt.Errorf("amount must be positive: %w", domain.ErrValidation))
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "amount must be positive: validation error",
		},
		{
			name:          "Missing user",
			role:          "admin",
			body:          `{"currency":"USDT","amount":"10"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Malformed amount",
			role:          "admin",
			body:          `{"user_id":1,"currency":"USDT","amount":"ten"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withUser(httptest.NewRequest(http.MethodPost, "/api/admin/wallets/deposit", strings.NewReader(tt.body)), 9, tt.role)
			rr := httptest.NewRecorder()

			handler.Deposit(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}
