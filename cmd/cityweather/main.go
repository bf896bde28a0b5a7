package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/apimgr/cityweather/src/client"
)

var (
	// Version info (set via ldflags during build)
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	// Set version info for the client
	client.Version = Version
	client.GitCommit = GitCommit
	client.BuildDate = BuildDate

	// Execute CLI
	if err := client.Execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		// Exit with appropriate code based on error type
		var exitErr *client.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
