package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lilactown/react-repl/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	rootID := flag.Int("root", 0, "application root id to open (optional, defaults to 1)")
	tickSeconds := flag.Int("tick", 0, "demo commit interval in seconds (optional, defaults to 1s)")
	noDemo := flag.Bool("no-demo", false, "do not start the built-in demo producer")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath, NoDemo: *noDemo}
	if id := *rootID; id > 0 {
		opts.RootID = id
	}
	if tick := *tickSeconds; tick > 0 {
		opts.TickEvery = tick
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "react-repl: %v\n", err)
		return 1
	}
	return 0
}
