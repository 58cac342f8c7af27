package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/ironsheep/pixelator-mcp/internal/logging"
	"github.com/ironsheep/pixelator-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("pixelator-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("pixelator-mcp - MCP server for median-cut quantization and pixel mosaics")
			fmt.Println()
			fmt.Println("Usage: pixelator-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  PIXELATOR_LOG_LEVEL=debug    Log level: debug, info, warn or error")
			fmt.Println("  PIXELATOR_WORKERS=4          Goroutines per quantize/mosaic call (default: CPU count)")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client.")
			return
		}
	}

	// Logs go to stderr (stdout is for MCP protocol)
	logger := logging.FromEnv("PIXELATOR_LOG_LEVEL")

	workers := runtime.NumCPU()
	if v := os.Getenv("PIXELATOR_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			logger.Warn("ignoring PIXELATOR_WORKERS", "value", v)
		} else {
			workers = n
		}
	}

	logger.Debug("starting pixelator-mcp",
		"version", Version, "build_time", BuildTime, "commit", GitCommit, "workers", workers)

	srv := server.New(server.Config{Workers: workers, Logger: logger})
	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
