package selling

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

var (
	ErrProductNotFound  = errors.New("produto não encontrado")
	ErrCustomerNotFound = errors.New("cliente não encontrado")
	ErrSaveSale         = errors.New("erro ao registrar venda")
)

// ValidationError carrega os campos rejeitados na ordem em que foram validados
type ValidationError struct {
	Fields []domain.FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, field := range e.Fields {
		names = append(names, field.Field)
	}
	return fmt.Sprintf("entrada inválida: %s", strings.Join(names, ", "))
}
