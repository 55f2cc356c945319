package errors

import "fmt"

// ConfigError representa un error de configuración
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config error [%s]: %s: %v", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("config error [%s]: %s", e.Field, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError crea un nuevo error de configuración
func NewConfigError(field, message string, err error) *ConfigError {
	return &ConfigError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// AIProviderNotFoundError indica que un proveedor de IA no fue encontrado
type AIProviderNotFoundError struct {
	Provider string
}

func (e *AIProviderNotFoundError) Error() string {
	return fmt.Sprintf("Proveedor de IA '%s' no encontrado en el registro", e.Provider)
}

// NewAIProviderNotFoundError crea un nuevo error de proveedor no encontrado
func NewAIProviderNotFoundError(provider string) *AIProviderNotFoundError {
	return &AIProviderNotFoundError{Provider: provider}
}

// ListFilesError es el único error fatal del orquestador: no se pudieron
// enumerar los archivos del PR.
type ListFilesError struct {
	PRNumber int
	Err      error
}

func (e *ListFilesError) Error() string {
	return fmt.Sprintf("no se pudieron listar los archivos del PR #%d: %v", e.PRNumber, e.Err)
}

func (e *ListFilesError) Unwrap() error {
	return e.Err
}

// NewListFilesError crea un nuevo error fatal de listado
func NewListFilesError(prNumber int, err error) *ListFilesError {
	return &ListFilesError{PRNumber: prNumber, Err: err}
}

// EventPayloadError indica que el payload del evento de CI no pudo leerse o parsearse
type EventPayloadError struct {
	Path string
	Err  error
}

func (e *EventPayloadError) Error() string {
	return fmt.Sprintf("event payload invalido en '%s': %v", e.Path, e.Err)
}

func (e *EventPayloadError) Unwrap() error {
	return e.Err
}
