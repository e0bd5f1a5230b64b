// internal/device/errors.go
package device

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"syscall"
)

// Code is a stable error identifier for the command layer.
// It is a string newtype, comparable, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Validation codes: detected before any device IO.
const (
	UnknownCommand  Code = "unknown_command"
	BadArity        Code = "bad_arity"
	MissingArgument Code = "missing_argument"
)

// IO codes: carry the OS errno when one exists.
const (
	NotFound         Code = "not_found"
	PermissionDenied Code = "permission_denied"
	OpenFailed       Code = "open_failed"
	ControlFailed    Code = "control_failed"
	WriteFailed      Code = "write_failed"
	InvalidState     Code = "invalid_state"
)

// Error keeps the code plus the context needed to diagnose it.
type Error struct {
	Code  Code
	Op    string
	Path  string
	Msg   string
	Errno syscall.Errno
	Err   error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Code))
	if e.Op != "" {
		b.WriteString(": ")
		b.WriteString(e.Op)
	}
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	if e.Errno != 0 {
		fmt.Fprintf(&b, ": errno %d (%s)", int(e.Errno), e.Errno.Error())
	} else if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets callers match on the code: errors.Is(err, device.BadArity).
func (e *Error) Is(target error) bool {
	c, ok := target.(Code)
	return ok && c == e.Code
}

// CodeOf extracts a Code from err. Empty for nil or foreign errors.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var c Code
	if errors.As(err, &c) {
		return c
	}
	return ""
}

// IsValidation reports whether err was raised before touching the device.
func IsValidation(err error) bool {
	switch CodeOf(err) {
	case UnknownCommand, BadArity, MissingArgument:
		return true
	}
	return false
}

func errnoOf(err error) syscall.Errno {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno
	}
	return 0
}

// openError maps an os.OpenFile failure onto the taxonomy.
func openError(path string, err error) error {
	code := OpenFailed
	switch {
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENXIO), errors.Is(err, syscall.ENODEV):
		code = NotFound
	case errors.Is(err, fs.ErrPermission):
		code = PermissionDenied
	}
	return &Error{Code: code, Op: "open", Path: path, Errno: errnoOf(err), Err: err}
}
