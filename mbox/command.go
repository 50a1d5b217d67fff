// Package mbox defines the message model of the mailbox daemon control
// protocol: the command set, the outcome codes and their user facing
// phrases.
package mbox

import "fmt"

// Command identifies an administrative operation of the mailbox daemon.
type Command byte

// Commands understood by the mailbox daemon. The numeric values are shared
// with the daemon and must not be reordered.
const (
	CmdPing Command = iota
	CmdGetStatus
	CmdReset
	CmdSuspend
	CmdResume
	CmdFlashModified
)

// ArgsLen returns the number of argument bytes the command carries. The
// argument length is fully determined by the command.
func (c Command) ArgsLen() int {
	if c == CmdResume {
		return 1
	}
	return 0
}

// RespLen returns the number of response argument bytes the command yields.
func (c Command) RespLen() int {
	if c == CmdGetStatus {
		return 1
	}
	return 0
}

func (c Command) String() string {
	switch c {
	case CmdPing:
		return "Ping"
	case CmdGetStatus:
		return "GetStatus"
	case CmdReset:
		return "Reset"
	case CmdSuspend:
		return "Suspend"
	case CmdResume:
		return "Resume"
	case CmdFlashModified:
		return "FlashModified"
	default:
		return fmt.Sprintf("Command(%d)", byte(c))
	}
}

// Argument bytes of the resume command.
const (
	ResumeNotModified   byte = 0x00
	ResumeFlashModified byte = 0x01
)

// Request is a command message sent to the daemon. A request is built fresh
// for each call and discarded afterwards.
type Request struct {
	Command Command
	Args    []byte
}

// Response is the daemon's answer to a single request. Args is only
// meaningful when Status is StatusSuccess.
type Response struct {
	Status Status
	Args   []byte
}
