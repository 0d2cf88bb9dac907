// Package errs defines the failure modes of a reconciliation run.
//
// Every error is fatal to the command that raised it: nothing is retried and
// no partial report is produced. Callers distinguish the kinds with errors.As.
package errs

import (
	"fmt"
)

// AuthenticationError reports that the caller identity check failed.
type AuthenticationError struct {
	Err error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("ensure your AWS credentials are set correctly in the environment; the underlying error is: %v", e.Err)
}

func (e *AuthenticationError) Unwrap() error { return e.Err }

// ServiceError wraps a failed provider API call.
type ServiceError struct {
	Op  string // API operation, e.g. "DescribeReservedInstances"
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("error calling %s: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// DataAssumptionError reports provider data that breaks an invariant the
// cost model depends on, such as a pricing query matching more than one
// product.
type DataAssumptionError struct {
	Assumption string
	Detail     string
	Err        error
}

func (e *DataAssumptionError) Error() string {
	msg := fmt.Sprintf("data assumption violated: %s", e.Assumption)
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DataAssumptionError) Unwrap() error { return e.Err }

// Service returns a ServiceError for op, or nil if err is nil.
func Service(op string, err error) error {
	if err == nil {
		return nil
	}
	return &ServiceError{Op: op, Err: err}
}

// Assumption returns a DataAssumptionError with a formatted detail.
func Assumption(assumption, format string, args ...any) *DataAssumptionError {
	return &DataAssumptionError{
		Assumption: assumption,
		Detail:     fmt.Sprintf(format, args...),
	}
}
