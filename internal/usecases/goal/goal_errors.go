package goal

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrGoalForbidden     = errors.New("sem permissão para a meta do vendedor")
	ErrInvalidGoal       = errors.New("valor de meta inválido")
	ErrInvalidMonth      = errors.New("mês inválido")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// GoalError carrega o código de erro da API e o contexto da meta
type GoalError struct {
	Err     error
	Code    string
	Advisor string
	Month   string
}

func (e *GoalError) Error() string {
	if e.Advisor != "" {
		return fmt.Sprintf("%s (vendedor %s, mês %s)", e.Err.Error(), e.Advisor, e.Month)
	}
	if e.Month != "" {
		return fmt.Sprintf("%s (mês %s)", e.Err.Error(), e.Month)
	}
	return e.Err.Error()
}

func (e *GoalError) Unwrap() error {
	return e.Err
}

func NewGoalError(baseErr error, code, advisor, month string) *GoalError {
	return &GoalError{
		Err:     baseErr,
		Code:    code,
		Advisor: advisor,
		Month:   month,
	}
}
