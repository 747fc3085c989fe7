package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-tracker-api/internal/scheduler"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
)

type fakeCronJob struct {
	triggerErr error
	triggered  int
}

func (f *fakeCronJob) TriggerManualSync() error {
	f.triggered++
	return f.triggerErr
}

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"sync_running": f.triggerErr != nil, "sync_enabled": true}
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name          string
		target        string
		triggerErr    error
		wantStatus    int
		wantCode      string
		wantTriggered int
	}{
		{
			name:          "Dispara o ranking de vendedores",
			target:        "/v1/cron/advisor-ranking/run",
			wantStatus:    http.StatusAccepted,
			wantTriggered: 1,
		},
		{
			name:          "Dispara todas as rotinas",
			target:        "/v1/cron/all/run",
			wantStatus:    http.StatusAccepted,
			wantTriggered: 1,
		},
		{
			name:          "Sincronização em andamento",
			target:        "/v1/cron/advisor-ranking/run",
			triggerErr:    scheduler.ErrSyncInProgress,
			wantStatus:    http.StatusConflict,
			wantCode:      apiErrors.ErrSyncInProgress,
			wantTriggered: 1,
		},
		{
			name:       "Tipo desconhecido",
			target:     "/v1/cron/meta/run",
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := &fakeCronJob{triggerErr: tt.triggerErr}
			services := CronJobServices{AdvisorRankingSyncService: job}

			rec := doRequest(t, CronJobs(services), http.MethodPost, tt.target, nil, adminClaims)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantTriggered, job.triggered)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeAPIError(t, rec).Code)
			}
		})
	}
}

func TestRunCronJobRequiresAdmin(t *testing.T) {
	job := &fakeCronJob{}
	services := CronJobServices{AdvisorRankingSyncService: job}

	rec := doRequest(t, CronJobs(services), http.MethodPost, "/v1/cron/advisor-ranking/run", nil, managerClaims)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Zero(t, job.triggered)
}

func TestGetCronStatus(t *testing.T) {
	services := CronJobServices{AdvisorRankingSyncService: &fakeCronJob{}}

	t.Run("Status de todas as rotinas", func(t *testing.T) {
		rec := doRequest(t, CronJobs(services), http.MethodGet, "/v1/cron/all/status", nil, adminClaims)

		require.Equal(t, http.StatusOK, rec.Code)

		var status map[string]map[string]any
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&status))
		assert.Contains(t, status, CronJobTypeAdvisorRanking)
	})

	t.Run("Status de uma rotina", func(t *testing.T) {
		rec := doRequest(t, CronJobs(services), http.MethodGet, "/v1/cron/advisor-ranking/status", nil, adminClaims)

		require.Equal(t, http.StatusOK, rec.Code)

		var status map[string]any
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&status))
		assert.Equal(t, true, status["sync_enabled"])
	})

	t.Run("Tipo desconhecido", func(t *testing.T) {
		rec := doRequest(t, CronJobs(services), http.MethodGet, "/v1/cron/meta/status", nil, adminClaims)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
