package dashboard

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrForbidden         = errors.New("sem permissão para o painel do vendedor")
	ErrInvalidPeriod     = errors.New("período inválido")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// DashboardError carrega o código de erro da API junto do erro base
type DashboardError struct {
	Err     error
	Code    string
	Details string
}

func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *DashboardError) Unwrap() error {
	return e.Err
}

func NewDashboardError(baseErr error, code, details string) *DashboardError {
	return &DashboardError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
