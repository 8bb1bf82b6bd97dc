package reporting

import (
	"errors"
	"fmt"
)

var (
	ErrReportNotFound   = errors.New("relatório não encontrado")
	ErrReportGeneration = errors.New("falha ao gerar relatório")
	ErrReportListing    = errors.New("falha ao listar relatórios")
)

// ReportGenerationError indica em qual etapa a geração do relatório falhou
type ReportGenerationError struct {
	Stage string
	Err   error
}

func (e *ReportGenerationError) Error() string {
	return fmt.Sprintf("%s (%s): %v", ErrReportGeneration, e.Stage, e.Err)
}

func (e *ReportGenerationError) Unwrap() []error {
	return []error{ErrReportGeneration, e.Err}
}
