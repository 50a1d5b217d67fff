package mbox

import "fmt"

// Status is the daemon's outcome code for a request.
type Status byte

// Outcome codes returned by the daemon. The numeric values are shared with
// the daemon and must not be reordered.
const (
	StatusSuccess Status = iota
	StatusInternal
	StatusInvalid
	StatusRejected
	StatusHardware
)

// String returns the user facing outcome phrase. The mapping is total:
// unrecognized codes report an unknown error instead of failing, so clients
// stay usable across daemon protocol versions.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "Success"
	case StatusInternal:
		return "Failed - Internal Error"
	case StatusInvalid:
		return "Failed - Invalid Command or Request"
	case StatusRejected:
		return "Failed - Request Rejected by Daemon"
	case StatusHardware:
		return "Failed - BMC Hardware Error"
	default:
		return "Failed - Unknown Error"
	}
}

// DaemonError is returned when the daemon executed a request and answered
// with a status other than StatusSuccess.
type DaemonError struct {
	Status Status
}

func (e *DaemonError) Error() string {
	return fmt.Sprintf("Daemon fault (code: %d, message: %s)", byte(e.Status), e.Status)
}

// DaemonState is the access state reported by the GetStatus command.
type DaemonState byte

// States of the mailbox daemon.
const (
	StateActive DaemonState = iota
	StateSuspended
)

func (s DaemonState) String() string {
	switch s {
	case StateActive:
		return "Active"
	case StateSuspended:
		return "Suspended"
	default:
		return fmt.Sprintf("Unknown(%d)", byte(s))
	}
}
