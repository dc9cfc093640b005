package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomz197/shoot/internal/client"
	"github.com/tomz197/shoot/internal/config"
	"github.com/tomz197/shoot/internal/input"
	"github.com/tomz197/shoot/internal/logging"
	"github.com/tomz197/shoot/internal/sensor"
	"golang.org/x/term"
)

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
	}

	logger, closer, err := logging.OpenFile(settings.LogFile, logging.Options{Level: settings.LogLevel})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := client.ClientOptions{Logger: logger, Seed: settings.Seed}
	if settings.MotionAddr != "" {
		slot := &input.MotionSlot{}
		bridge := sensor.NewBridge(slot, logger.WithPrefix("sensor"))
		go func() {
			if err := sensor.ListenAndServe(ctx, settings.MotionAddr, bridge.Handler()); err != nil {
				logger.Error("motion bridge stopped", "err", err)
			}
		}()
		logger.Info("motion bridge listening", "addr", settings.MotionAddr)
		opts.Motion = slot
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	if err := client.NewClient(reader, os.Stdout, opts).Run(ctx); err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
