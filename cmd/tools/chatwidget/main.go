package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/zhouzirui/vitrine/backend/internal/widget"
)

var (
	endpoint string
	timeout  time.Duration
)

// rootCmd is the terminal front end of the chat widget
var rootCmd = &cobra.Command{
	Use:   "chatwidget",
	Short: "Talk to the landing page FAQ assistant from a terminal",
	Long: `chatwidget drives the FAQ assistant through the same HTTP endpoints the
landing page widget uses.

Available subcommands:
  chat - interactive session with /open, /close and /quit
  ask  - send one question and print the answer`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "http://localhost:8080", "backend base URL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 60*time.Second, "HTTP timeout per request")

	rootCmd.AddCommand(chatCmd, askCmd)
}

func newClient() *widget.Client {
	return widget.NewClient(endpoint, &http.Client{Timeout: timeout})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
