// Package ctl implements the administrative commands of the mailbox daemon
// on top of a mboxrpc.Caller.
package ctl

import (
	"fmt"

	"github.com/mboxio/go-mbox/mbox"
	"github.com/mboxio/go-mbox/mboxrpc"

	"github.com/mdzio/go-logging"
)

var clnLog = logging.Get("mbox-ctl")

// Client executes the administrative commands of the mailbox daemon. Each
// method performs exactly one exchange and holds no state between calls.
type Client struct {
	Name string
	mboxrpc.Caller
}

// Ping checks that the daemon is alive and responding.
func (c *Client) Ping() error {
	clnLog.Debugf("Sending command Ping to %s", c.Name)
	_, err := c.exec(mbox.CmdPing, nil)
	return err
}

// Status queries whether the daemon is active or suspended.
func (c *Client) Status() (mbox.DaemonState, error) {
	clnLog.Debugf("Sending command GetStatus to %s", c.Name)
	resp, err := c.exec(mbox.CmdGetStatus, nil)
	if err != nil {
		return 0, err
	}
	return mbox.DaemonState(resp.Args[0]), nil
}

// Reset hard resets the daemon state and points the memory window back to
// flash.
func (c *Client) Reset() error {
	clnLog.Debugf("Sending command Reset to %s", c.Name)
	_, err := c.exec(mbox.CmdReset, nil)
	return err
}

// Suspend asks the daemon to inhibit flash accesses.
func (c *Client) Suspend() error {
	clnLog.Debugf("Sending command Suspend to %s", c.Name)
	_, err := c.exec(mbox.CmdSuspend, nil)
	return err
}

// Resume lifts a previous suspension. modified states whether the flash
// contents changed while the daemon was suspended.
func (c *Client) Resume(modified bool) error {
	clnLog.Debugf("Sending command Resume to %s (modified: %t)", c.Name, modified)
	arg := mbox.ResumeNotModified
	if modified {
		arg = mbox.ResumeFlashModified
	}
	_, err := c.exec(mbox.CmdResume, []byte{arg})
	return err
}

// FlashModified tells the daemon that the flash contents changed, so it
// discards cached window data.
func (c *Client) FlashModified() error {
	clnLog.Debugf("Sending command FlashModified to %s", c.Name)
	_, err := c.exec(mbox.CmdFlashModified, nil)
	return err
}

// exec performs one exchange and converts a non-success status into a
// *mbox.DaemonError. The argument shape is checked before anything is sent.
func (c *Client) exec(cmd mbox.Command, args []byte) (*mbox.Response, error) {
	if len(args) != cmd.ArgsLen() {
		return nil, &ValidationError{
			Reason: fmt.Sprintf("command %s requires %d argument bytes, got %d", cmd, cmd.ArgsLen(), len(args)),
		}
	}
	resp, err := c.Call(&mbox.Request{Command: cmd, Args: args}, cmd.RespLen())
	if err != nil {
		return nil, err
	}
	if resp.Status != mbox.StatusSuccess {
		return nil, &mbox.DaemonError{Status: resp.Status}
	}
	return resp, nil
}
