package mboxrpc

import (
	"sync"

	"github.com/mboxio/go-mbox/mbox"

	"github.com/mdzio/go-logging"
)

var dspLog = logging.Get("mbox-dispatch")

// A Handler executes one daemon command. Returning a *mbox.DaemonError sets
// the response status; any other error maps to StatusInternal.
type Handler interface {
	Handle(args []byte) ([]byte, error)
}

// HandlerFunc is an adapter to use ordinary functions as Handler's.
type HandlerFunc func(args []byte) ([]byte, error)

// Handle implements interface Handler.
func (h HandlerFunc) Handle(args []byte) ([]byte, error) {
	return h(args)
}

// Dispatcher routes received commands to the registered Handler's.
type Dispatcher struct {
	mutex    sync.RWMutex
	handlers map[mbox.Command]Handler
}

// Handle registers a Handler for a command.
func (d *Dispatcher) Handle(cmd mbox.Command, h Handler) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.handlers == nil {
		d.handlers = make(map[mbox.Command]Handler)
	}
	d.handlers[cmd] = h
}

// HandleFunc registers an ordinary function as Handler.
func (d *Dispatcher) HandleFunc(cmd mbox.Command, f func(args []byte) ([]byte, error)) {
	d.Handle(cmd, HandlerFunc(f))
}

// Dispatch executes the handler registered for req.Command and builds the
// response message. Unknown commands report StatusInvalid.
func (d *Dispatcher) Dispatch(req *mbox.Request) *mbox.Response {
	d.mutex.RLock()
	h, ok := d.handlers[req.Command]
	d.mutex.RUnlock()
	if !ok {
		dspLog.Warningf("Unknown command received: %s", req.Command)
		return &mbox.Response{Status: mbox.StatusInvalid}
	}

	args, err := h.Handle(req.Args)
	if err != nil {
		if derr, ok := err.(*mbox.DaemonError); ok {
			return &mbox.Response{Status: derr.Status}
		}
		dspLog.Errorf("Command %s failed: %v", req.Command, err)
		return &mbox.Response{Status: mbox.StatusInternal}
	}
	return &mbox.Response{Status: mbox.StatusSuccess, Args: args}
}
