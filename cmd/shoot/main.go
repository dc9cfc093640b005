package main

import (
	"context"
	"os"

	_ "github.com/ebitengine/hideconsole"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tomz197/shoot/internal/config"
	"github.com/tomz197/shoot/internal/ebitenhost"
	"github.com/tomz197/shoot/internal/input"
	"github.com/tomz197/shoot/internal/logging"
	"github.com/tomz197/shoot/internal/sensor"
)

const windowScale = 2

func main() {
	settings, cfgErr := config.LoadSettings()

	logger, err := logging.New(os.Stderr, logging.Options{Level: settings.LogLevel})
	if err != nil {
		logger = logging.Discard()
	}
	if cfgErr != nil {
		logger.Warn("config", "err", cfgErr)
	}

	opts := ebitenhost.Options{Logger: logger, Seed: settings.Seed, Quittable: true}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
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

	game, err := ebitenhost.NewGame(opts)
	if err != nil {
		logger.Fatal("create game", "err", err)
	}

	ebiten.SetWindowSize(config.ViewWidth*windowScale, config.ViewHeight*windowScale)
	ebiten.SetWindowTitle("Shoot")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("run", "err", err)
	}
}
