// Package main is the entry point for ncdeviced, a control-protocol
// device endpoint: a single WebSocket session carries the IS-12/MS-05-02
// object-tree protocol, while a small IS-04 node API lets a controller
// discover the endpoint and its WebSocket href.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/ncdevice/ncdevice/internal/buildinfo"
	"github.com/ncdevice/ncdevice/internal/config"
	"github.com/ncdevice/ncdevice/internal/events"
	"github.com/ncdevice/ncdevice/internal/model"
	"github.com/ncdevice/ncdevice/internal/nmosapi"
	"github.com/ncdevice/ncdevice/internal/protocol"
	"github.com/ncdevice/ncdevice/internal/session"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if flag.NArg() > 0 {
		switch flag.Arg(0) {
		case "serve":
			runServe(logger, *configPath)
			return
		case "version":
			fmt.Println(buildinfo.String())
			for k, v := range buildinfo.Info() {
				fmt.Printf("  %-12s %s\n", k+":", v)
			}
			return
		default:
			fmt.Fprintf(os.Stderr, "unknown command: %s\n", flag.Arg(0))
			os.Exit(1)
		}
	}

	fmt.Println("ncdeviced - NMOS control-protocol device endpoint")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  serve    Start the control-protocol and node API servers")
	fmt.Println("  version  Show version")
	fmt.Println()
	fmt.Println("Flags:")
	flag.PrintDefaults()
}

func runServe(logger *slog.Logger, configPath string) {
	logger.Info("starting ncdeviced", "version", buildinfo.Version, "commit", buildinfo.GitCommit, "branch", buildinfo.GitBranch, "built", buildinfo.BuildTime)

	cfgPath, err := config.FindConfig(configPath)
	if err != nil {
		logger.Error("config", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "path", cfgPath, "error", err)
		os.Exit(1)
	}

	if cfg.LogLevel != "" {
		level, err := config.ParseLogLevel(cfg.LogLevel)
		if err != nil {
			logger.Error("invalid log_level in config", "error", err)
			os.Exit(1)
		}
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: config.ReplaceLogLevelNames,
		}))
	}

	if cfg.NodeID == "" {
		cfg.NodeID = uuid.NewString()
		logger.Warn("node_id not configured, generated a new one for this run", "node_id", cfg.NodeID)
	}
	if cfg.DeviceID == "" {
		cfg.DeviceID = uuid.NewString()
		logger.Warn("device_id not configured, generated a new one for this run", "device_id", cfg.DeviceID)
	}

	logger.Info("config loaded",
		"path", cfgPath,
		"port", cfg.Listen.Port,
		"node_id", cfg.NodeID,
		"device_id", cfg.DeviceID,
	)

	bus := events.New()
	tree := model.NewTree(bus)
	model.BuildDefaultTree(tree, model.DefaultTreeConfig{
		Identity: model.DeviceIdentity{
			NcVersion:    buildinfo.Version,
			Manufacturer: protocol.Manufacturer{Name: cfg.Manufacturer},
			Product:      protocol.Product{Name: cfg.Product, Key: cfg.Product},
			SerialNumber: cfg.SerialNumber,
		},
		NmosDeviceID: cfg.DeviceID,
	})

	registry := session.NewRegistry()
	go session.RunFanOut(bus, registry, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", session.Handler(tree, registry, logger))

	controlAddr := cfg.Listen.Address
	if controlAddr == "" {
		controlAddr = "0.0.0.0"
	}
	wsHref := fmt.Sprintf("ws://%s:%d/ws", controlAddr, cfg.Listen.Port)

	controlServer := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Listen.Address, cfg.Listen.Port),
		Handler: mux,
	}

	nodeAPI := nmosapi.NewServer(cfg.Listen.Address, cfg.Listen.Port+1, nmosapi.Identity{
		NodeID:       cfg.NodeID,
		DeviceID:     cfg.DeviceID,
		Label:        cfg.Product,
		Manufacturer: cfg.Manufacturer,
		Product:      cfg.Product,
		Hostname:     controlAddr,
		TAIOffsetSec: cfg.TAIOffsetSec,
	}, wsHref, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
		bus.Close()
		_ = controlServer.Shutdown(context.Background())
		_ = nodeAPI.Shutdown(context.Background())
	}()

	go func() {
		if err := nodeAPI.Start(ctx); err != nil && ctx.Err() == nil {
			logger.Error("node api server failed", "error", err)
		}
	}()

	logger.Info("control-protocol server listening", "address", controlServer.Addr, "path", "/ws")
	if err := controlServer.ListenAndServe(); err != nil && ctx.Err() == nil {
		logger.Error("control server failed", "error", err)
		os.Exit(1)
	}

	logger.Info("ncdeviced stopped")
}
