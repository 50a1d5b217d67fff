package mboxrpc

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/mboxio/go-mbox/mbox"
)

// Decoder reads mailbox control messages from the wire.
type Decoder struct {
	b *bufio.Reader
}

// NewDecoder creates a Decoder.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{b: bufio.NewReader(r)}
}

// DecodeRequest reads one command message.
func (d *Decoder) DecodeRequest() (*mbox.Request, error) {
	code, args, err := d.decode(msgTypeRequest)
	if err != nil {
		return nil, err
	}
	return &mbox.Request{Command: mbox.Command(code), Args: args}, nil
}

// DecodeResponse reads one response message.
func (d *Decoder) DecodeResponse() (*mbox.Response, error) {
	code, args, err := d.decode(msgTypeResponse)
	if err != nil {
		return nil, err
	}
	return &mbox.Response{Status: mbox.Status(code), Args: args}, nil
}

func (d *Decoder) decode(wantType byte) (byte, []byte, error) {
	var header struct {
		Marker   [3]byte
		MsgType  uint8
		Code     uint8
		ArgsSize uint32
	}
	if err := binary.Read(d.b, binary.BigEndian, &header); err != nil {
		return 0, nil, fmt.Errorf("Reading of header failed: %w", err)
	}
	if header.Marker != mboxMarker {
		return 0, nil, &ProtocolError{Reason: fmt.Sprintf("invalid marker %q", header.Marker[:])}
	}
	if header.MsgType != wantType {
		return 0, nil, &ProtocolError{Reason: fmt.Sprintf("unexpected message type %#02x", header.MsgType)}
	}
	if header.ArgsSize > argsSizeLimit {
		return 0, nil, &ProtocolError{
			Reason: fmt.Sprintf("args size %d exceeds the limit of %d", header.ArgsSize, argsSizeLimit),
		}
	}

	args := make([]byte, int(header.ArgsSize))
	if _, err := io.ReadFull(d.b, args); err != nil {
		return 0, nil, &ProtocolError{Reason: fmt.Sprintf("message truncated: %v", err)}
	}
	return header.Code, args, nil
}
