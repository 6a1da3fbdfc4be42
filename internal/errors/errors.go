// Package errors defines the domain error vocabulary shared by services and
// handlers.
package errors

import "fmt"

// DomainError carries a stable machine-readable code alongside the message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
