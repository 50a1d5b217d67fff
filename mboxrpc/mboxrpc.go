// Package mboxrpc implements the wire codec and the synchronous
// request/response exchange of the mailbox daemon control protocol.
package mboxrpc

// Every message starts with the marker, followed by the message type, the
// command or status byte, the argument size and the argument bytes.
const (
	msgTypeRequest  = 0x00
	msgTypeResponse = 0x01

	// max. number of argument bytes in a single message
	argsSizeLimit = 255
)

var mboxMarker = [3]byte{'M', 'b', 'x'}
