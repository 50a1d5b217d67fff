package mboxrpc

import (
	"bytes"
	"fmt"
	"net"
	"time"

	"github.com/mdzio/go-logging"
)

// send timeout
const sendTimeout = 15 * time.Second

var svrLog = logging.Get("mboxrpc-server")

// Server accepts control connections and answers one request per connection.
// It backs the mboxsim daemon and the integration tests.
type Server struct {
	*Dispatcher
	Network  string
	Addr     string
	ServeErr chan<- error

	listener net.Listener
	stop     chan struct{}
	done     chan struct{}
}

// Start starts listening for control requests.
func (s *Server) Start() error {
	// avoid blocking
	s.stop = make(chan struct{}, 1)
	s.done = make(chan struct{}, 1)

	// start listening
	svrLog.Infof("Starting mailbox control server on %s address %s", s.Network, s.Addr)
	l, err := net.Listen(s.Network, s.Addr)
	if err != nil {
		return fmt.Errorf("Listen on address %s failed: %w", s.Addr, err)
	}
	s.listener = l

	// start serving
	var delay time.Duration
	go func() {
		defer s.listener.Close()
		for {
			conn, err := s.listener.Accept()
			if err != nil {
				// stop request?
				select {
				case <-s.stop:
					// signal server is down
					s.done <- struct{}{}
					return
				default:
				}
				// temporary error?
				if ne, ok := err.(net.Error); ok && ne.Temporary() {
					// sleep on accept failure
					if delay == 0 {
						delay = 5 * time.Millisecond
					} else {
						delay *= 2
					}
					if max := 1 * time.Second; delay > max {
						delay = max
					}
					svrLog.Tracef("Accept failed: %v", err)
					time.Sleep(delay)
					// retry
					continue
				}
				// signal server is down
				s.done <- struct{}{}
				// signal error
				s.ServeErr <- err
				return
			}
			delay = 0
			// handle connection
			go s.handle(conn)
		}
	}()
	return nil
}

// ListenAddr returns the bound listener address. Useful for servers started
// on port 0.
func (s *Server) ListenAddr() string {
	return s.listener.Addr().String()
}

// Stop stops the server.
func (s *Server) Stop() {
	svrLog.Debug("Shutting down mailbox control server")
	s.stop <- struct{}{}
	s.listener.Close()
	<-s.done
}

func (s *Server) handle(conn net.Conn) {
	defer conn.Close()
	svrLog.Trace("Request received from ", conn.RemoteAddr())

	// decode request
	dec := NewDecoder(conn)
	req, err := dec.DecodeRequest()
	if err != nil {
		svrLog.Errorf("Decoding of request from %s failed: %v", conn.RemoteAddr(), err)
		return
	}
	svrLog.Debugf("Received command %s from %s with %d argument bytes",
		req.Command, conn.RemoteAddr(), len(req.Args))

	// dispatch command
	resp := s.Dispatch(req)

	// encode response
	buf := bytes.Buffer{}
	e := NewEncoder(&buf)
	if err := e.EncodeResponse(resp); err != nil {
		svrLog.Errorf("Encoding of response %s failed: %v", resp.Status, err)
		return
	}
	svrLog.Debugf("Sending response to %s: %s", conn.RemoteAddr(), resp.Status)

	// send response
	if err := conn.SetWriteDeadline(time.Now().Add(sendTimeout)); err != nil {
		svrLog.Warningf("Setting of timeout for sending failed: %v", err)
	}
	if _, err := conn.Write(buf.Bytes()); err != nil {
		svrLog.Warningf("Sending of response to %s failed: %v", conn.RemoteAddr(), err)
	}
}
