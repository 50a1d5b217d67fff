package mboxrpc

import "fmt"

// TransportError reports a connection, send or receive failure. The
// underlying cause is available through Unwrap.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("Transport failure (%s): %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ProtocolError reports a message that is structurally inconsistent with the
// protocol, e.g. a reply carrying fewer argument bytes than required.
type ProtocolError struct {
	Reason string
}

func (e *ProtocolError) Error() string {
	return "Protocol violation: " + e.Reason
}

// EncodingError reports a message that cannot be represented on the wire.
type EncodingError struct {
	Reason string
}

func (e *EncodingError) Error() string {
	return "Encoding failed: " + e.Reason
}
