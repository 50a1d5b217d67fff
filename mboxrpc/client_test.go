package mboxrpc

import (
	"errors"
	"net"
	"os"
	"testing"
	"time"

	"github.com/mboxio/go-mbox/mbox"

	"github.com/mdzio/go-lib/testutil"
	"github.com/mdzio/go-logging"
	"github.com/stretchr/testify/assert"
)

// Test configuration (environment variables)
const (
	// LOG_LEVEL: OFF, ERROR, WARNING, INFO, DEBUG, TRACE

	// address of a running mailbox daemon (tcp), e.g. 127.0.0.1:5650
	mboxdAddress = "MBOXD_ADDRESS"
)

func init() {
	var l logging.LogLevel
	if l.Set(os.Getenv("LOG_LEVEL")) == nil {
		logging.SetLevel(l)
	}
}

func newTestServer(t *testing.T, dsp *Dispatcher) (*Server, string) {
	serveErr := make(chan error, 1)
	svr := &Server{Dispatcher: dsp, Network: "tcp", Addr: "127.0.0.1:0", ServeErr: serveErr}
	if err := svr.Start(); err != nil {
		t.Fatal(err)
	}
	return svr, svr.ListenAddr()
}

func TestClientCall(t *testing.T) {
	dsp := &Dispatcher{}
	dsp.HandleFunc(mbox.CmdGetStatus, func(args []byte) ([]byte, error) {
		return []byte{byte(mbox.StateSuspended)}, nil
	})
	svr, addr := newTestServer(t, dsp)
	defer svr.Stop()

	c := &Client{Network: "tcp", Addr: addr}
	resp, err := c.Call(&mbox.Request{Command: mbox.CmdGetStatus}, 1)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, mbox.StatusSuccess, resp.Status)
	assert.Equal(t, []byte{byte(mbox.StateSuspended)}, resp.Args)
}

func TestClientShortResponse(t *testing.T) {
	dsp := &Dispatcher{}
	dsp.HandleFunc(mbox.CmdGetStatus, func(args []byte) ([]byte, error) {
		return []byte{0x00}, nil
	})
	svr, addr := newTestServer(t, dsp)
	defer svr.Stop()

	c := &Client{Network: "tcp", Addr: addr}
	// one reply byte can never satisfy a larger expectation
	for respLen := 2; respLen <= 4; respLen++ {
		resp, err := c.Call(&mbox.Request{Command: mbox.CmdGetStatus}, respLen)
		var perr *ProtocolError
		if !errors.As(err, &perr) {
			t.Fatalf("ProtocolError expected for expected length %d, got %v", respLen, err)
		}
		assert.Nil(t, resp)
	}
}

func TestClientTrimsResponse(t *testing.T) {
	dsp := &Dispatcher{}
	dsp.HandleFunc(mbox.CmdGetStatus, func(args []byte) ([]byte, error) {
		return []byte{7, 8, 9}, nil
	})
	svr, addr := newTestServer(t, dsp)
	defer svr.Stop()

	c := &Client{Network: "tcp", Addr: addr}
	resp, err := c.Call(&mbox.Request{Command: mbox.CmdGetStatus}, 1)
	if err != nil {
		t.Fatal(err)
	}
	// trailing reply bytes must not leak to the caller
	assert.Equal(t, []byte{7}, resp.Args)
}

func TestClientUnknownCommand(t *testing.T) {
	svr, addr := newTestServer(t, &Dispatcher{})
	defer svr.Stop()

	c := &Client{Network: "tcp", Addr: addr}
	resp, err := c.Call(&mbox.Request{Command: mbox.Command(200)}, 0)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, mbox.StatusInvalid, resp.Status)
}

func TestClientConnectFailure(t *testing.T) {
	// reserve an address and release it again
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := l.Addr().String()
	l.Close()

	c := &Client{Network: "tcp", Addr: addr, ReceiveTimeout: time.Second}
	resp, err := c.Call(&mbox.Request{Command: mbox.CmdPing}, 0)
	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("TransportError expected, got %v", err)
	}
	assert.Equal(t, "connect", terr.Op)
	assert.Nil(t, resp)
}

func TestClientLiveDaemon(t *testing.T) {
	c := &Client{Network: "tcp", Addr: testutil.Config(t, mboxdAddress)}
	resp, err := c.Call(&mbox.Request{Command: mbox.CmdPing}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if resp.Status != mbox.StatusSuccess {
		t.Errorf("unexpected status: %s", resp.Status)
	}
}
