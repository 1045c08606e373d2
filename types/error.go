package types

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotImplemented = errors.New("not implemented")

	ErrNotFound = errors.New("not found")

	ErrAccountNotInitialized = errors.New("account not initialized")

	ErrNotSizedCollection = errors.New("not a sized collection")

	ErrInstructionFailed = errors.New("instruction failed")

	ErrTransactionFailed = errors.New("transaction failed")

	ErrTxNotLand = errors.New("transaction did not land")

	ErrMissingSigner = errors.New("missing signer key")

	ErrAccountNotGranted = errors.New("account not granted to the call")

	ErrInvalidAccountContext = errors.New("invalid account context")

	ErrDispatchFailed = errors.New("dispatch failed")
)

// ContextError reports an account that does not play the role its operation
// requires. It is returned before anything is sent.
type ContextError struct {
	Operation string
	Account   string
	Role      string
}

func (e *ContextError) Error() string {
	return fmt.Sprintf("%s: %s: account %s is not %s", ErrInvalidAccountContext, e.Operation, e.Account, e.Role)
}

func (e *ContextError) Unwrap() error {
	return ErrInvalidAccountContext
}

// SignerError reports a signer account the wallet holds no key for. It is
// returned before anything is sent; match it with ErrMissingSigner.
type SignerError struct {
	Operation string
	Account   string
}

func (e *SignerError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrMissingSigner, e.Operation, e.Account)
}

func (e *SignerError) Unwrap() error {
	return ErrMissingSigner
}

// DispatchError carries the metadata program's rejection of an operation.
// Err holds the reason as reported by the node, Logs the program logs when
// they were returned.
type DispatchError struct {
	Operation string
	Signature string
	Err       error
	Logs      []string
}

func (e *DispatchError) Error() string {
	var sb strings.Builder
	sb.WriteString(ErrDispatchFailed.Error())
	sb.WriteString(": ")
	sb.WriteString(e.Operation)
	if e.Signature != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Signature)
		sb.WriteString(")")
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *DispatchError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrDispatchFailed}
	}
	return []error{ErrDispatchFailed, e.Err}
}
