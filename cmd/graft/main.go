package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	gerrors "github.com/graft-dev/graft/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐┬─┐┌─┐┌─┐┌┬┐
  │ ┬├┬┘├─┤├┤  │
  └─┘┴└─┴ ┴└   ┴
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "graft",
		Short: "Post-hoc HTML hydration for Go",
		Long: `Graft walks existing HTML documents and splices Go-rendered
subtrees into elements carrying a marker attribute.

  • One-shot transformation of files on disk
  • Preview server with live reload
  • Documents from a local directory or an S3 bucket`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		runCmd(),
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		var gerr *gerrors.Error
		if errors.As(err, &gerr) {
			fmt.Fprint(os.Stderr, gerr.Format())
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}

// printBanner prints the graft ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
