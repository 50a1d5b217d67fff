package mboxrpc

import (
	"bytes"
	"fmt"
	"net"
	"time"

	"github.com/mboxio/go-mbox/mbox"

	"github.com/mdzio/go-logging"
)

// Well-known control endpoint of the mailbox daemon.
const (
	DefaultNetwork = "unix"
	DefaultAddr    = "/run/mbox/mboxd.sock"
)

// receive timeout, if not specified
const receiveTimeout = 15 * time.Second

var clnLog = logging.Get("mboxrpc-client")

// Caller performs one synchronous command/response exchange. respLen states
// how many response argument bytes the caller expects to read; 0 means the
// payload is ignored.
type Caller interface {
	Call(req *mbox.Request, respLen int) (*mbox.Response, error)
}

// Client provides access to the control endpoint of a mailbox daemon. A zero
// Client addresses the well-known endpoint.
type Client struct {
	Network        string
	Addr           string
	ReceiveTimeout time.Duration
}

// Call executes one command/response exchange: connect, send the request,
// block until the reply arrives, validate and decode it. The connection is
// released on every path. Call never retries. Call implements Caller.
func (c *Client) Call(req *mbox.Request, respLen int) (*mbox.Response, error) {
	network := c.Network
	if network == "" {
		network = DefaultNetwork
	}
	addr := c.Addr
	if addr == "" {
		addr = DefaultAddr
	}
	clnLog.Tracef("Calling command %s on %s with %d argument bytes", req.Command, addr, len(req.Args))

	// open connection
	conn, err := net.Dial(network, addr)
	if err != nil {
		return nil, &TransportError{Op: "connect", Err: fmt.Errorf("Connecting to %s failed: %w", addr, err)}
	}
	defer conn.Close()

	// encode request
	buf := bytes.Buffer{}
	e := NewEncoder(&buf)
	if err := e.EncodeRequest(req); err != nil {
		return nil, err
	}

	// send request
	if _, err := conn.Write(buf.Bytes()); err != nil {
		return nil, &TransportError{Op: "send", Err: fmt.Errorf("Sending of request to %s failed: %w", addr, err)}
	}

	// receive response
	timeout := c.ReceiveTimeout
	if timeout == 0 {
		timeout = receiveTimeout
	}
	if err := conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		return nil, &TransportError{Op: "receive", Err: fmt.Errorf("Setting of read deadline failed: %w", err)}
	}
	dec := NewDecoder(conn)
	resp, err := dec.DecodeResponse()
	if err != nil {
		if _, ok := err.(*ProtocolError); ok {
			return nil, err
		}
		return nil, &TransportError{Op: "receive", Err: err}
	}

	// a shorter reply than expected is a protocol violation, not a short read
	if len(resp.Args) < respLen {
		return nil, &ProtocolError{
			Reason: fmt.Sprintf("command %s returned %d response argument bytes, expected %d",
				req.Command, len(resp.Args), respLen),
		}
	}

	// hand out exactly the expected number of bytes
	args := make([]byte, respLen)
	copy(args, resp.Args)
	out := &mbox.Response{Status: resp.Status, Args: args}
	clnLog.Tracef("Result: %s", out.Status)
	return out, nil
}
