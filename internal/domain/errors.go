package domain

import (
	"errors"
	"fmt"
)

// Categorias de erro expostas pela camada de serviços. Cada área funcional
// devolve sempre a mesma categoria, seja qual for a causa.
var (
	ErrAction   = errors.New("action error")
	ErrAdAssets = errors.New("ad assets error")
	ErrImporter = errors.New("importer error")
)

// ServiceError envolve a falha de uma operação de serviço na sua categoria.
type ServiceError struct {
	Category error  // ErrAction, ErrAdAssets ou ErrImporter
	Op       string // Operação que falhou
	Err      error  // Erro original
}

// Error devolve a mensagem do erro original, que já contém os parâmetros da operação
func (e *ServiceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Category.Error(), e.Op)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro original
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Is permite errors.Is(err, domain.ErrImporter) e afins
func (e *ServiceError) Is(target error) bool {
	return target == e.Category
}

func NewActionError(op string, err error) *ServiceError {
	return &ServiceError{Category: ErrAction, Op: op, Err: err}
}

func NewAdAssetsError(op string, err error) *ServiceError {
	return &ServiceError{Category: ErrAdAssets, Op: op, Err: err}
}

func NewImporterError(op string, err error) *ServiceError {
	return &ServiceError{Category: ErrImporter, Op: op, Err: err}
}
