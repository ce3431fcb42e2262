// Package main - Entry point for the unity-check HTTP server
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"unity-check/adapters/spreadsheet"
	"unity-check/api"
	"unity-check/core/evaluator"
	"unity-check/internal/config"
	"unity-check/internal/logging"
)

const version = "0.1.0"

func main() {
	addr := flag.String("addr", "", "server address (overrides config)")
	cfgFile := flag.String("config", "", "config file path")
	flag.Parse()

	cfg := config.Get()
	if *cfgFile != "" {
		loaded, err := config.Load(*cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(loaded)
		cfg = loaded
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	defer logging.Sync()

	listenAddr := cfg.Server.Addr
	if *addr != "" {
		listenAddr = *addr
	}

	opts := []evaluator.Option{
		evaluator.WithMaxConcurrent(cfg.Evaluator.MaxConcurrent),
	}
	if cfg.Spreadsheet.URL != "" {
		client := spreadsheet.NewClient(cfg.Spreadsheet.URL,
			spreadsheet.WithTimeout(time.Duration(cfg.Spreadsheet.TimeoutSeconds)*time.Second))
		opts = append(opts, evaluator.WithExternal(client))
	}

	apiServer := api.NewServer(version, evaluator.New(opts...))

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", apiServer))

	logging.Info("unity-check server listening",
		zap.String("addr", listenAddr),
		zap.String("version", version))

	if err := http.ListenAndServe(listenAddr, mux); err != nil {
		logging.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}
