package domain

import (
	"errors"
	"fmt"
)

// ErrStorageConflict is returned when a batch violates a storage uniqueness
// constraint (duplicate SMTP code). The whole batch has been rolled back.
var ErrStorageConflict = errors.New("storage conflict: duplicate smtp code")

type ValidationErrorKind string

const (
	UnknownClient       ValidationErrorKind = "UnknownClient"
	DomainNotAllowed    ValidationErrorKind = "DomainNotAllowed"
	MissingPrefixConfig ValidationErrorKind = "MissingPrefixConfig"
	InvalidSmtpCode     ValidationErrorKind = "InvalidSmtpCode"
)

// ValidationError reports the first failing check of a record. Index is the
// record position in the submitted batch.
type ValidationError struct {
	Kind   ValidationErrorKind
	Index  int
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("record %d: %s: %s", e.Index, e.Kind, e.Detail)
}

func NewUnknownClientError(clientID string) *ValidationError {
	return &ValidationError{
		Kind:   UnknownClient,
		Detail: fmt.Sprintf("Cliente ID '%s' no está registrado.", clientID),
	}
}

func NewDomainNotAllowedError(domainName, clientID string) *ValidationError {
	return &ValidationError{
		Kind:   DomainNotAllowed,
		Detail: fmt.Sprintf("Dominio '%s' no está permitido para el cliente '%s'.", domainName, clientID),
	}
}

func NewMissingPrefixConfigError(domainName string) *ValidationError {
	return &ValidationError{
		Kind:   MissingPrefixConfig,
		Detail: fmt.Sprintf("Dominio '%s' no tiene un prefijo SMTP configurado.", domainName),
	}
}

func NewInvalidSmtpCodeError(domainName, prefix string) *ValidationError {
	return &ValidationError{
		Kind:   InvalidSmtpCode,
		Detail: fmt.Sprintf("Código SMTP inválido para el dominio '%s'. Debe iniciar con '%s'.", domainName, prefix),
	}
}

var ErrBatchTooLarge = errors.New("batch exceeds the maximum number of records")
