package mbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandShapes(t *testing.T) {
	cases := []struct {
		cmd     Command
		name    string
		argsLen int
		respLen int
	}{
		{CmdPing, "Ping", 0, 0},
		{CmdGetStatus, "GetStatus", 0, 1},
		{CmdReset, "Reset", 0, 0},
		{CmdSuspend, "Suspend", 0, 0},
		{CmdResume, "Resume", 1, 0},
		{CmdFlashModified, "FlashModified", 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.name, c.cmd.String())
			assert.Equal(t, c.argsLen, c.cmd.ArgsLen())
			assert.Equal(t, c.respLen, c.cmd.RespLen())
		})
	}
}

func TestCommandUnknownString(t *testing.T) {
	assert.Equal(t, "Command(99)", Command(99).String())
}
