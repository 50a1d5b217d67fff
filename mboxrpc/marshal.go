package mboxrpc

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/mboxio/go-mbox/mbox"
)

// Encoder writes mailbox control messages to the wire.
type Encoder struct {
	w *bufio.Writer
}

// NewEncoder creates an encoder.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: bufio.NewWriter(w)}
}

// EncodeRequest writes one command message.
func (e *Encoder) EncodeRequest(req *mbox.Request) error {
	return e.encode(msgTypeRequest, byte(req.Command), req.Args)
}

// EncodeResponse writes one response message.
func (e *Encoder) EncodeResponse(resp *mbox.Response) error {
	return e.encode(msgTypeResponse, byte(resp.Status), resp.Args)
}

func (e *Encoder) encode(msgType byte, code byte, args []byte) error {
	if len(args) > argsSizeLimit {
		return &EncodingError{
			Reason: fmt.Sprintf("%d argument bytes exceed the limit of %d", len(args), argsSizeLimit),
		}
	}

	// write header
	if _, err := e.w.Write(mboxMarker[:]); err != nil {
		return fmt.Errorf("Writing of marker failed: %w", err)
	}
	if err := e.w.WriteByte(msgType); err != nil {
		return fmt.Errorf("Writing of message type failed: %w", err)
	}
	if err := e.w.WriteByte(code); err != nil {
		return fmt.Errorf("Writing of code byte failed: %w", err)
	}
	if err := binary.Write(e.w, binary.BigEndian, uint32(len(args))); err != nil {
		return fmt.Errorf("Writing of args size failed: %w", err)
	}

	// write args
	if _, err := e.w.Write(args); err != nil {
		return fmt.Errorf("Writing of args failed: %w", err)
	}
	return e.w.Flush()
}
