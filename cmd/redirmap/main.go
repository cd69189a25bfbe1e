package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/arthur-debert/redirmap/internal/cli"
	"github.com/arthur-debert/redirmap/pkg/style"
)

func main() {
	// Pick up a local .env before anything reads the environment.
	_ = godotenv.Load()

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errStyle := style.StatusStyle(style.StatusError)
		fmt.Fprintln(os.Stderr, errStyle.Sprint("Error: "+err.Error()))
		os.Exit(1)
	}
}
