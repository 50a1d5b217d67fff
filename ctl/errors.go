package ctl

import (
	"errors"
	"fmt"

	"github.com/mboxio/go-mbox/mbox"
)

// ValidationError reports malformed input that is rejected before any call
// to the daemon is attempted.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "Invalid request: " + e.Reason
}

// ParseResumeArg interprets the argument of the resume command. Exactly "0"
// (flash not modified) and "1" (flash modified) are accepted.
func ParseResumeArg(arg string) (bool, error) {
	switch arg {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return false, &ValidationError{Reason: fmt.Sprintf("resume argument must be 0 or 1, got %q", arg)}
}

// ExitCode maps a command outcome to the mboxctl process exit code: 0 on
// success, otherwise the negated daemon status code. Failures that never
// reach the daemon use the negated StatusInvalid respectively StatusInternal
// codes.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var derr *mbox.DaemonError
	if errors.As(err, &derr) {
		return -int(derr.Status)
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		return -int(mbox.StatusInvalid)
	}
	return -int(mbox.StatusInternal)
}
