package handler

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/mocks"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestGetAdvisorRanking(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		setupMock  func(m *mocks.MockRankingService)
		wantStatus int
		wantCode   string
	}{
		{
			name:   "Ranking do mês informado",
			target: "/v1/ranking/advisors?month=2025-06",
			setupMock: func(m *mocks.MockRankingService) {
				m.EXPECT().GetAdvisorRanking("2025-06").Return(&domain.AdvisorRankingResponse{
					Month:   "2025-06",
					Ranking: []domain.AdvisorRankingItem{{Advisor: "John Doe", Position: 1}},
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "Mês corrente quando omitido",
			target: "/v1/ranking/advisors",
			setupMock: func(m *mocks.MockRankingService) {
				m.EXPECT().GetAdvisorRanking("").Return(&domain.AdvisorRankingResponse{Ranking: []domain.AdvisorRankingItem{}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Mês inválido",
			target:     "/v1/ranking/advisors?month=06-2025",
			setupMock:  func(m *mocks.MockRankingService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:   "Erro no repositório",
			target: "/v1/ranking/advisors?month=2025-06",
			setupMock: func(m *mocks.MockRankingService) {
				m.EXPECT().GetAdvisorRanking("2025-06").Return(nil, errors.New("timeout"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockRankingService(ctrl)
			tt.setupMock(service)

			rec := doRequest(t, AdvisorRanking(service), http.MethodGet, tt.target, nil, salespersonClaims)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeAPIError(t, rec).Code)
			}
		})
	}
}
