package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Process exit codes.
const (
	ExitSuccess      = 0 // query answered, dataset valid, scenarios passed
	ExitFailure      = 1 // miss, malformed input, invalid dataset, failed scenario
	ExitCommandError = 2 // unreadable dataset or script, bad flags or config
)

// CLIError codes. E2xx codes come from store.LoadError.
const (
	ErrCodeGeneric   = "E001" // no more specific code applies
	ErrCodeNotFound  = "E301" // search matched no record
	ErrCodeMissing   = "E302" // diff/mode named an absent record
	ErrCodeMalformed = "E303" // formula or query cannot be decoded
	ErrCodeInvalid   = "E304" // dataset failed validation
	ErrCodeTestFail  = "E305" // conformance scenario failed
)

// ExitError is returned from RunE to choose the process exit code.
// ErrCode is the CLIError code used when the error is reported through
// OutputFormatter.Fail; empty means ErrCodeGeneric.
type ExitError struct {
	Code    int
	ErrCode string
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError returns an ExitError without an underlying cause.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError returns an ExitError wrapping err.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// WithErrCode sets the CLIError code and returns e.
func (e *ExitError) WithErrCode(errCode string) *ExitError {
	e.ErrCode = errCode
	return e
}

// GetExitCode returns the exit code carried by err, or ExitFailure.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// ErrorCode returns the CLIError code carried by err, or ErrCodeGeneric.
func ErrorCode(err error) string {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.ErrCode != "" {
		return exitErr.ErrCode
	}
	return ErrCodeGeneric
}

// OutputFormatter writes command results as text or as a CLIResponse
// JSON envelope.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // verbose lines; nil means Writer
	Verbose   bool
	RunID     string
}

// CLIResponse is the JSON envelope of single-shot commands.
type CLIResponse struct {
	Status string      `json:"status"` // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`
	Error  *CLIError   `json:"error,omitempty"`
	RunID  string      `json:"run_id,omitempty"`
}

// CLIError is the error member of a CLIResponse.
type CLIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Success writes data. Text output prints data with fmt, so result
// payloads render through their String methods.
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Format == "json" {
		return f.encode(CLIResponse{Status: "ok", Data: data, RunID: f.RunID})
	}
	_, err := fmt.Fprintln(f.Writer, data)
	return err
}

// Error writes an error report. Details are printed in text mode only
// when Verbose is set.
func (f *OutputFormatter) Error(code, message string, details interface{}) error {
	if f.Format == "json" {
		return f.encode(CLIResponse{
			Status: "error",
			Error:  &CLIError{Code: code, Message: message, Details: details},
			RunID:  f.RunID,
		})
	}

	if _, err := fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message); err != nil {
		return err
	}
	if f.Verbose && details != nil {
		_, err := fmt.Fprintf(f.Writer, "Details: %v\n", details)
		return err
	}
	return nil
}

// Fail reports exitErr and returns it for RunE. A write failure is
// returned in its place.
func (f *OutputFormatter) Fail(exitErr *ExitError, details interface{}) error {
	if err := f.Error(ErrorCode(exitErr), exitErr.Message, details); err != nil {
		return WrapExitError(ExitCommandError, "write output", err)
	}
	return exitErr
}

// VerboseLog writes a diagnostic line when Verbose is set.
func (f *OutputFormatter) VerboseLog(format string, args ...interface{}) {
	if !f.Verbose {
		return
	}
	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	fmt.Fprintf(w, format+"\n", args...)
}

func (f *OutputFormatter) encode(resp CLIResponse) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetEscapeHTML(false)
	return enc.Encode(resp)
}
