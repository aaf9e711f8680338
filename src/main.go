package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"singlevator/lib/driver-go/elevio"
	"singlevator/src/config"
	"singlevator/src/executor"
	"singlevator/src/timer"
	"singlevator/src/types"
	"singlevator/src/utils"
)

func main() {
	configPath := flag.String("config", "elevator.con", "Elevator config file")
	simConfigPath := flag.String("simconfig", "", "Simulator config file with com_ip and com_port")
	debug := flag.Bool("debug", false, "Log state transitions")
	logPath := flag.String("log", "", "Also write log output to this file")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logFile, err := utils.InitLogger(level, *logPath)
	if err != nil {
		slog.Error("Logger setup failed", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	cfg := config.Default()
	if err := cfg.LoadFile(*configPath); err != nil {
		fatal("Config load failed", err)
	}
	if *simConfigPath != "" {
		if err := cfg.LoadFile(*simConfigPath); err != nil {
			fatal("Simulator config load failed", err)
		}
	}
	slog.Info("Started",
		"doorOpenDuration", cfg.DoorOpenDuration,
		"clearRequestVariant", cfg.ClearRequestVariant,
		"pollRate", cfg.InputPollRate,
		"elevatorType", cfg.ElevatorType)

	dev, err := elevio.Open(cfg)
	if err != nil {
		fatal("Device open failed", err)
	}
	defer dev.Close()

	doorTimer := timer.New()
	ctrl := executor.NewController(cfg, dev, doorTimer)
	poller := executor.NewPoller(dev, ctrl, doorTimer)
	poller.InitElevPos()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := poller.Run(ctx, cfg.InputPollRate); err != nil {
		slog.Info("Shutting down", "reason", err)
	}
	dev.SetMotorDirection(types.MD_Stop)
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
