package selling

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrSaleNotFound      = errors.New("venda não encontrada")
	ErrSaleAlreadyExists = errors.New("venda já cadastrada")
	ErrInvalidSale       = errors.New("dados da venda inválidos")
	ErrInvalidFilter     = errors.New("filtro inválido")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// SaleError carrega o código de erro da API junto do erro base
type SaleError struct {
	Err     error
	Code    string
	SaleID  string
	Details string
}

func (e *SaleError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SaleError) Unwrap() error {
	return e.Err
}

func NewSaleError(baseErr error, code, saleID, details string) *SaleError {
	return &SaleError{
		Err:     baseErr,
		Code:    code,
		SaleID:  saleID,
		Details: details,
	}
}
