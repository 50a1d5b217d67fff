package sim

import (
	"testing"

	"github.com/mboxio/go-mbox/mbox"
	"github.com/mboxio/go-mbox/mboxrpc"

	"github.com/stretchr/testify/assert"
)

func newTestDaemon() (*Daemon, *mboxrpc.Dispatcher) {
	d := &Daemon{}
	dsp := &mboxrpc.Dispatcher{}
	d.Register(dsp)
	return d, dsp
}

func TestInitialState(t *testing.T) {
	d, dsp := newTestDaemon()
	assert.Equal(t, mbox.StateActive, d.State())

	resp := dsp.Dispatch(&mbox.Request{Command: mbox.CmdGetStatus})
	assert.Equal(t, mbox.StatusSuccess, resp.Status)
	assert.Equal(t, []byte{byte(mbox.StateActive)}, resp.Args)
}

func TestSuspendAndResume(t *testing.T) {
	d, dsp := newTestDaemon()

	resp := dsp.Dispatch(&mbox.Request{Command: mbox.CmdSuspend})
	assert.Equal(t, mbox.StatusSuccess, resp.Status)
	assert.Equal(t, mbox.StateSuspended, d.State())

	// suspending twice is refused
	resp = dsp.Dispatch(&mbox.Request{Command: mbox.CmdSuspend})
	assert.Equal(t, mbox.StatusRejected, resp.Status)
	assert.Equal(t, mbox.StateSuspended, d.State())

	resp = dsp.Dispatch(&mbox.Request{Command: mbox.CmdResume, Args: []byte{mbox.ResumeFlashModified}})
	assert.Equal(t, mbox.StatusSuccess, resp.Status)
	assert.Equal(t, mbox.StateActive, d.State())
}

func TestResumeArgValidation(t *testing.T) {
	_, dsp := newTestDaemon()

	resp := dsp.Dispatch(&mbox.Request{Command: mbox.CmdResume})
	assert.Equal(t, mbox.StatusInvalid, resp.Status)

	resp = dsp.Dispatch(&mbox.Request{Command: mbox.CmdResume, Args: []byte{2}})
	assert.Equal(t, mbox.StatusInvalid, resp.Status)

	resp = dsp.Dispatch(&mbox.Request{Command: mbox.CmdResume, Args: []byte{0, 1}})
	assert.Equal(t, mbox.StatusInvalid, resp.Status)
}

func TestStatelessCommands(t *testing.T) {
	d, dsp := newTestDaemon()
	for _, cmd := range []mbox.Command{mbox.CmdPing, mbox.CmdReset, mbox.CmdFlashModified} {
		resp := dsp.Dispatch(&mbox.Request{Command: cmd})
		assert.Equal(t, mbox.StatusSuccess, resp.Status, "command %s", cmd)
	}
	assert.Equal(t, mbox.StateActive, d.State())
}
