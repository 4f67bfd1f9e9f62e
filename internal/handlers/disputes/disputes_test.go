package disputes

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GlebRadaev/loadermarket/internal/domain"
	"github.com/GlebRadaev/loadermarket/internal/dto"
	"github.com/GlebRadaev/loadermarket/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

var admin = domain.Actor{ID: 9, Role: domain.RoleAdmin}

func NewMock(t *testing.T) (*DisputeHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func serve(h http.HandlerFunc, method, pattern, target string, body io.Reader) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.MethodFunc(method, pattern, h)
	req := httptest.NewRequest(method, target, body)
	req = req.WithContext(auth.WithUser(req.Context(), admin.ID, string(admin.Role)))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func testDispute(status domain.DisputeStatus) *domain.LoaderDispute {
	return &domain.LoaderDispute{
		ID:       4,
		OrderID:  7,
		OpenedBy: 2,
		Reason:   "payment never arrived",
		Status:   status,
	}
}

func TestListDisputes(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().List(gomock.Any(), admin, "open").Return([]domain.LoaderDispute{*testDispute(domain.DisputeOpen)}, nil)
	rr := serve(handler.ListDisputes, http.MethodGet, "/api/admin/disputes", "/api/admin/disputes?status=open", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp []dto.DisputeResponseDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, []string{}, resp[0].EvidenceURLs)

	service.EXPECT().List(gomock.Any(), admin, "closed").Return(nil, fmt.Errorf("unknown dispute status: %w", domain.ErrValidation))
	rr = serve(handler.ListDisputes, http.MethodGet, "/api/admin/disputes", "/api/admin/disputes?status=closed", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestGetDispute(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Get(gomock.Any(), admin, 4).Return(testDispute(domain.DisputeInReview), nil)
	rr := serve(handler.GetDispute, http.MethodGet, "/api/admin/disputes/{id}", "/api/admin/disputes/4", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	service.EXPECT().Get(gomock.Any(), admin, 5).Return(nil, domain.ErrNotFound)
	rr = serve(handler.GetDispute, http.MethodGet, "/api/admin/disputes/{id}", "/api/admin/disputes/5", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestReview(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Open dispute",
			prepareMock: func() {
				service.EXPECT().MarkInReview(gomock.Any(), admin, 4).Return(testDispute(domain.DisputeInReview), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Already in review",
			prepareMock: func() {
				service.EXPECT().MarkInReview(gomock.Any(), admin, 4).Return(nil, domain.ErrStaleState)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := serve(handler.Review, http.MethodPost, "/api/admin/disputes/{id}/review", "/api/admin/disputes/4/review", nil)
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestResolve(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Mutual with share",
			body: `{"outcome":"mutual","loader_share":"0.3","admin_notes":"split"}`,
			prepareMock: func() {
				service.EXPECT().Resolve(gomock.Any(), admin, 4, "mutual", gomock.Any(), "split").
					DoAndReturn(func(_, _, _, _ any, share *decimal.Decimal, _ any) (*domain.LoaderDispute, *domain.LoaderOrder, error) {
						require.NotNil(t, share)
						assert.True(t, share.Equal(decimal.RequireFromString("0.3")))
						d := testDispute(domain.DisputeResolvedMutual)
						d.LoaderShare = *share
						return d, &domain.LoaderOrder{ID: 7, Status: domain.OrderResolvedMutual}, nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Loader wins without share",
			body: `{"outcome":"loader_wins"}`,
			prepareMock: func() {
				service.EXPECT().Resolve(gomock.Any(), admin, 4, "loader_wins", gomock.Nil(), "").
					Return(testDispute(domain.DisputeResolvedLoaderWins), &domain.LoaderOrder{ID: 7, Status: domain.OrderResolvedLoaderWins}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Already resolved",
			body: `{"outcome":"receiver_wins"}`,
			prepareMock: func() {
				service.EXPECT().Resolve(gomock.Any(), admin, 4, "receiver_wins", gomock.Nil(), "").Return(nil, nil, domain.ErrAlreadyResolved)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "Malformed share",
			body:         `{"outcome":"mutual","loader_share":"half"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := serve(handler.Resolve, http.MethodPost, "/api/admin/disputes/{id}/resolve", "/api/admin/disputes/4/resolve", strings.NewReader(tt.body))
			assert.Equal(t, tt.expectedCode, rr.Code)
			if rr.Code == http.StatusOK {
				var resp dto.ResolveDisputeResponseDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, 7, resp.Order.ID)
			}
		})
	}
}
