package main

import (
	"fmt"
	"os"

	"github.com/mrlokans/bookcatalog/internal/config"
	"github.com/mrlokans/bookcatalog/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	// If no arguments or "serve" command, run the HTTP server
	if len(os.Args) < 2 || os.Args[1] == "serve" {
		cfg, err := config.NewConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		entrypoint.Run(cfg, Version)
		return
	}

	switch command := os.Args[1]; command {
	case "version":
		fmt.Printf("%s (%s)\n", Version, Commit)

	case "-h", "--help", "help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command>\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  serve     Start the HTTP server (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  version   Print version information\n")
	fmt.Fprintf(os.Stderr, "\nConfiguration is read from the environment (and an optional .env file):\n")
	fmt.Fprintf(os.Stderr, "  HOST, PORT, STORE_MODE (file|memory), DATABASE_PATH, DATABASE_LOG_LEVEL,\n")
	fmt.Fprintf(os.Stderr, "  READ_ONLY, SHUTDOWN_TIMEOUT_IN_SECONDS, ENV_FILE\n")
}
