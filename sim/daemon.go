// Package sim provides a simulated mailbox daemon for development and tests.
// It models only the command behavior observable by a control client.
package sim

import (
	"sync"

	"github.com/mboxio/go-mbox/mbox"
	"github.com/mboxio/go-mbox/mboxrpc"

	"github.com/mdzio/go-logging"
)

var simLog = logging.Get("mbox-sim")

// Daemon tracks the Active/Suspended state the control commands operate on.
// There is no flash behind it.
type Daemon struct {
	mutex sync.Mutex
	state mbox.DaemonState
}

// Register installs the command handlers on the dispatcher.
func (d *Daemon) Register(dsp *mboxrpc.Dispatcher) {
	dsp.HandleFunc(mbox.CmdPing, d.ping)
	dsp.HandleFunc(mbox.CmdGetStatus, d.status)
	dsp.HandleFunc(mbox.CmdReset, d.reset)
	dsp.HandleFunc(mbox.CmdSuspend, d.suspend)
	dsp.HandleFunc(mbox.CmdResume, d.resume)
	dsp.HandleFunc(mbox.CmdFlashModified, d.flashModified)
}

// State returns the current daemon state.
func (d *Daemon) State() mbox.DaemonState {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.state
}

func (d *Daemon) ping(args []byte) ([]byte, error) {
	return nil, nil
}

func (d *Daemon) status(args []byte) ([]byte, error) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return []byte{byte(d.state)}, nil
}

func (d *Daemon) reset(args []byte) ([]byte, error) {
	simLog.Debug("Pointing window back to flash")
	return nil, nil
}

func (d *Daemon) suspend(args []byte) ([]byte, error) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if d.state == mbox.StateSuspended {
		// a second suspension is refused, the first one is still pending
		return nil, &mbox.DaemonError{Status: mbox.StatusRejected}
	}
	d.state = mbox.StateSuspended
	simLog.Debug("Flash access suspended")
	return nil, nil
}

func (d *Daemon) resume(args []byte) ([]byte, error) {
	if len(args) != 1 || (args[0] != mbox.ResumeNotModified && args[0] != mbox.ResumeFlashModified) {
		return nil, &mbox.DaemonError{Status: mbox.StatusInvalid}
	}
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if args[0] == mbox.ResumeFlashModified {
		simLog.Debug("Flash marked as modified on resume")
	}
	d.state = mbox.StateActive
	return nil, nil
}

func (d *Daemon) flashModified(args []byte) ([]byte, error) {
	simLog.Debug("Discarding cached window contents")
	return nil, nil
}
