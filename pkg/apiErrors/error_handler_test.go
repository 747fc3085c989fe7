package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrSaleNotFound, "Venda não encontrada", map[string]string{"id": "abc123"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrSaleNotFound, body.Code)
	assert.Equal(t, "Venda não encontrada", body.Message)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, StatusFor(ErrGoalForbidden))
	assert.Equal(t, http.StatusUnauthorized, StatusFor(ErrInvalidToken))
	assert.Equal(t, http.StatusInternalServerError, StatusFor("XYZ_999"))
}

func TestFromError(t *testing.T) {
	assert.Equal(t, APIError{Code: ErrInternalServer, Message: "Erro desconhecido"}, FromError(nil, ErrInvalidRequest))
	assert.Equal(t, APIError{Code: ErrInvalidRequest, Message: "falhou"}, FromError(errors.New("falhou"), ErrInvalidRequest))
}
