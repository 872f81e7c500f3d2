package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhouzirui/vitrine/backend/internal/widget"
)

// askCmd sends a single question
var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask one question and print the answer",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

func runAsk(cmd *cobra.Command, args []string) error {
	w := widget.New(newClient(), nil)
	w.Open()

	if err := w.Submit(cmd.Context(), strings.Join(args, " ")); err != nil {
		return err
	}
	w.Wait()

	msgs := w.State().Messages
	fmt.Fprintln(cmd.OutOrStdout(), msgs[len(msgs)-1].Text)
	return nil
}
