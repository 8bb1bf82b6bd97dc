package analyzing

import (
	"errors"
	"fmt"
)

var ErrAggregationFailed = errors.New("falha na consulta analítica")

// QueryError identifica qual agregação falhou, mantendo o erro do banco
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrAggregationFailed, e.Op, e.Err)
}

func (e *QueryError) Unwrap() []error {
	return []error{ErrAggregationFailed, e.Err}
}

func newQueryError(op string, err error) error {
	var queryErr *QueryError
	if errors.As(err, &queryErr) {
		return err
	}
	return &QueryError{Op: op, Err: err}
}
