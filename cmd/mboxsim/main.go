/*
mboxsim runs a simulated mailbox daemon. It answers the full control command
set with an in-memory Active/Suspended state and is meant for developing and
testing control clients without BMC hardware.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mboxio/go-mbox/config"
	"github.com/mboxio/go-mbox/mboxrpc"
	"github.com/mboxio/go-mbox/sim"

	"github.com/mdzio/go-logging"
)

var (
	log = logging.Get("mboxsim")

	logLevel = logging.InfoLevel

	network = flag.String("network", mboxrpc.DefaultNetwork, "`network` of the control endpoint: unix or tcp")
	addr    = flag.String("addr", mboxrpc.DefaultAddr, "`address` of the control endpoint")
	cfgPath = flag.String("config", "", "`path` of an optional configuration file")
)

func init() {
	flag.Var(
		&logLevel,
		"log",
		"specifies the minimum `severity` of printed log messages: off, error, warning, info, debug or trace",
	)
}

func run() error {
	// parse command line
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage of mboxsim:")
		flag.PrintDefaults()
	}
	flag.Parse()
	// set log options
	logging.SetLevel(logLevel)

	endpointNetwork, endpointAddr := *network, *addr
	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			return err
		}
		if cfg.Daemon.Network != "" {
			endpointNetwork = cfg.Daemon.Network
		}
		if cfg.Daemon.Address != "" {
			endpointAddr = cfg.Daemon.Address
		}
	}

	// wire daemon state to the control server
	dsp := &mboxrpc.Dispatcher{}
	daemon := &sim.Daemon{}
	daemon.Register(dsp)

	serveErr := make(chan error, 1)
	svr := &mboxrpc.Server{
		Dispatcher: dsp,
		Network:    endpointNetwork,
		Addr:       endpointAddr,
		ServeErr:   serveErr,
	}
	if err := svr.Start(); err != nil {
		return err
	}
	defer svr.Stop()

	// serve until a signal arrives
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		return err
	case s := <-sig:
		log.Infof("Received signal %v, shutting down", s)
	}
	return nil
}

func main() {
	err := run()
	// log fatal error
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	os.Exit(0)
}
