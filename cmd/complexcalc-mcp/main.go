package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	internalmcp "github.com/mamaar/complexcalc/internal/mcp"
	"github.com/mamaar/complexcalc/pkg/logging"
)

const version = "0.1.0"

var (
	flagHTTP    = flag.String("http", "", "Serve streamable HTTP on this address (e.g. :8080) instead of stdio")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile = flag.String("logfile", "", "Append logs to this file instead of stderr")
	flagVersion = flag.Bool("version", false, "Show version information")
)

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("complexcalc-mcp version %s\n", version)
		fmt.Println("Model Context Protocol server for complex number arithmetic")
		os.Exit(0)
	}

	// stdout carries the protocol in stdio mode, so logs never go there.
	var logOut io.Writer = os.Stderr
	if *flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(*flagLogFile), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
			os.Exit(1)
		}
		file, err := os.OpenFile(*flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file %s: %v\n", *flagLogFile, err)
			os.Exit(1)
		}
		defer file.Close()
		logOut = file
	}
	level := slog.LevelInfo
	if *flagDebug {
		level = slog.LevelDebug
	}
	logger := logging.New(logOut, level)

	state := internalmcp.NewMCPServer(logger)
	defer state.Close()

	server := mcpsdk.NewServer(&mcpsdk.Implementation{Name: "complexcalc", Version: version}, nil)
	internalmcp.RegisterAllTools(server, state)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *flagHTTP != "" {
		if err := serveHTTP(ctx, server, *flagHTTP, logger); err != nil {
			logger.Error("http server failed", "err", err)
			os.Exit(1)
		}
		return
	}

	logger.Info("complexcalc-mcp starting on stdio", "version", version, "pid", os.Getpid())
	if err := server.Run(ctx, &mcpsdk.StdioTransport{}); err != nil && ctx.Err() == nil {
		logger.Error("server failed", "err", err)
		os.Exit(1)
	}
}

func serveHTTP(ctx context.Context, server *mcpsdk.Server, addr string, logger *slog.Logger) error {
	handler := mcpsdk.NewStreamableHTTPHandler(func(*http.Request) *mcpsdk.Server {
		return server
	}, nil)
	httpServer := &http.Server{Addr: addr, Handler: handler}

	go func() {
		<-ctx.Done()
		_ = httpServer.Shutdown(context.Background())
	}()

	logger.Info("complexcalc-mcp serving streamable HTTP", "addr", addr, "version", version)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
