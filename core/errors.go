package core

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
)

// Error codes used at the edges of the system (configuration, I/O, services).
// Parsing markdown never fails and therefore never produces one of these.
const (
	NOERROR   int = 0
	EMISSING  int = 122 // markdown source not present: no input, unreadable file
	EINVALID  int = 123 // command or request argument out of range
	ECONFIG   int = 124 // malformed value for a markdown.* configuration key
	EINTERNAL int = 125 // element kind not handled, broken invariant
)

func errorText(ecode int) string {
	switch ecode {
	case NOERROR:
		return "OK"
	case EMISSING:
		return "no markdown source"
	case EINVALID:
		return "invalid argument"
	case ECONFIG:
		return "bad configuration"
	case EINTERNAL:
		return "internal error"
	}
	return "undefined error"
}

// hint returns advice for end users on how to recover from an error with
// code ecode, or "".
func hint(ecode int) string {
	switch ecode {
	case EMISSING:
		return "enter markdown after the command or load a file"
	case ECONFIG:
		return "check the markdown.* settings (max-depth, normalize, preview-width, cache-expiry, max-scan)"
	case EINTERNAL:
		return "this is a bug, please report it with the markdown input"
	}
	return ""
}

// AppError is an error with an error code and a message suitable for users.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

type codedError struct {
	error
	code int
	msg  string
}

func (e codedError) Unwrap() error {
	return e.error
}

func (e codedError) Error() string {
	return fmt.Sprintf("%s (%d): %v", errorText(e.code), e.code, e.error)
}

func (e codedError) ErrorCode() int {
	return e.code
}

func (e codedError) UserMessage() string {
	return e.msg
}

var _ AppError = codedError{}

// WrapError wraps err, attaching an error code and a user message.
// A nil err is replaced by an error carrying the code's default text.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	return codedError{err, code, fmt.Sprintf(format, v...)}
}

// Error creates an error with an error code and a user message.
func Error(code int, format string, v ...interface{}) error {
	return WrapError(nil, code, format, v...)
}

// Code returns the error code associated with err.
// Errors without a code report EINTERNAL, a nil error reports NOERROR.
func Code(err error) int {
	if err == nil {
		return NOERROR
	}
	var e AppError
	if errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user message associated with err, falling back
// to the default text of its code. For nil it returns "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e AppError
	if errors.As(err, &e) {
		return e.UserMessage()
	}
	return errorText(Code(err))
}

// HTTPStatus maps the code of err to a status for HTTP responses.
// Problems with a request are client errors, everything else is a server error.
func HTTPStatus(err error) int {
	switch Code(err) {
	case NOERROR:
		return http.StatusOK
	case EMISSING, EINVALID:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// ExitCode is the process exit status for commands terminating with err.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return Code(err) - EMISSING + 2
}

// UserError reports err on stderr in a form intended for end users and
// returns the exit status for it.
func UserError(err error) int {
	return reportTo(os.Stderr, err)
}

func reportTo(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	code := Code(err)
	fmt.Fprintf(w, "mdtree: %s: %s\n", errorText(code), UserMessage(err))
	if h := hint(code); h != "" {
		fmt.Fprintf(w, "        %s\n", h)
	}
	return ExitCode(err)
}
