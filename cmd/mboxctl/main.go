/*
mboxctl is the control utility for the mailbox daemon. It sends one
administrative command per invocation and prints the outcome. The exit code
is 0 on success, otherwise the negated daemon status code.
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mboxio/go-mbox/config"
	"github.com/mboxio/go-mbox/ctl"
	"github.com/mboxio/go-mbox/mbox"
	"github.com/mboxio/go-mbox/mboxrpc"

	"github.com/mdzio/go-logging"
)

const (
	name       = "MBOX Control"
	version    = 1
	subVersion = 0
)

var (
	log = logging.Get("mboxctl")

	logLevel = logging.ErrorLevel

	network = flag.String("network", mboxrpc.DefaultNetwork, "`network` of the daemon endpoint: unix or tcp")
	addr    = flag.String("addr", mboxrpc.DefaultAddr, "`address` of the daemon endpoint")
	cfgPath = flag.String("config", "", "`path` of an optional configuration file")

	ping         = flag.Bool("ping", false, "ping the daemon")
	status       = flag.Bool("status", false, "check status of the daemon")
	reset        = flag.Bool("reset", false, "hard reset the daemon state")
	pointToFlash = flag.Bool("point-to-flash", false, "point the memory window back to flash (same as -reset)")
	suspend      = flag.Bool("suspend", false, "suspend the daemon to inhibit flash accesses")
	resume       = flag.String("resume", "", "resume the daemon, `arg` states whether flash was modified (0 - no | 1 - yes)")
	modified     = flag.Bool("flash-modified", false, "tell the daemon that the flash contents changed")
	showVersion  = flag.Bool("version", false, "print the version and exit")
)

func init() {
	flag.Var(
		&logLevel,
		"log",
		"specifies the minimum `severity` of printed log messages: off, error, warning, info, debug or trace",
	)
}

// newCaller builds the RPC client from the flags and the optional config
// file. Explicitly set flags take precedence over the file.
func newCaller() (*mboxrpc.Client, error) {
	c := &mboxrpc.Client{Network: *network, Addr: *addr}
	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			return nil, err
		}
		if cfg.Daemon.Network != "" {
			c.Network = cfg.Daemon.Network
		}
		if cfg.Daemon.Address != "" {
			c.Addr = cfg.Daemon.Address
		}
		c.ReceiveTimeout = cfg.Timeout()
		flag.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "network":
				c.Network = *network
			case "addr":
				c.Addr = *addr
			}
		})
	}
	return c, nil
}

// report prints the one line outcome for op. Failures that never produced a
// daemon status are logged instead.
func report(op string, err error) {
	if err == nil {
		fmt.Printf("%s: %s\n", op, mbox.StatusSuccess)
		return
	}
	var derr *mbox.DaemonError
	if errors.As(err, &derr) {
		fmt.Printf("%s: %s\n", op, derr.Status)
		return
	}
	log.Errorf("Failed to send %s command: %v", strings.ToLower(op), err)
}

func run() int {
	// parse command line
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n", os.Args[0])
		flag.PrintDefaults()
	}
	// flag.Parse calls os.Exit(2) on error
	flag.Parse()
	// set log options
	logging.SetLevel(logLevel)

	if *showVersion {
		fmt.Printf("%s V%d.%.2d\n", name, version, subVersion)
		return 0
	}

	caller, err := newCaller()
	if err != nil {
		log.Error(err)
		return ctl.ExitCode(err)
	}
	client := &ctl.Client{Name: caller.Addr, Caller: caller}

	switch {
	case *ping:
		err = client.Ping()
		report("Ping", err)
	case *status:
		var state mbox.DaemonState
		state, err = client.Status()
		if err == nil {
			fmt.Printf("Daemon Status: %s\n", state)
		} else {
			report("Status", err)
		}
	case *reset || *pointToFlash:
		err = client.Reset()
		report("Reset", err)
	case *suspend:
		err = client.Suspend()
		report("Suspend", err)
	case *resume != "":
		var mod bool
		mod, err = ctl.ParseResumeArg(*resume)
		if err != nil {
			log.Error(err)
			break
		}
		err = client.Resume(mod)
		report("Resume", err)
	case *modified:
		err = client.FlashModified()
		report("Flash Modified", err)
	default:
		flag.Usage()
		err = &ctl.ValidationError{Reason: "no command given"}
	}
	return ctl.ExitCode(err)
}

func main() {
	// a negative code is truncated by the OS, like a C return statement
	os.Exit(run())
}
