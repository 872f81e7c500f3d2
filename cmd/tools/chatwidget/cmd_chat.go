package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/zhouzirui/vitrine/backend/internal/model/chat"
	"github.com/zhouzirui/vitrine/backend/internal/widget"
)

// chatCmd runs an interactive session
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start an interactive chat session. The panel starts open.

Commands:
  /open   expand the panel
  /close  collapse the panel
  /quit   leave`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func runChat(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	client := newClient()

	entries, err := client.FAQs(ctx)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}

	w := widget.New(client, entries)
	p := &printer{out: out}
	w.OnChange(p.render)

	p.render(w.State())
	w.Open()

	in := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "> ")
		if !in.Scan() {
			fmt.Fprintln(out)
			return in.Err()
		}

		line := strings.TrimSpace(in.Text())
		switch line {
		case "/quit":
			return nil
		case "/open":
			w.Open()
			continue
		case "/close":
			w.Close()
			continue
		}

		err := w.Submit(ctx, line)
		switch {
		case errors.Is(err, widget.ErrCollapsed):
			fmt.Fprintln(out, "(panel is closed, type /open)")
		case errors.Is(err, widget.ErrEmpty):
		case err != nil:
			fmt.Fprintf(out, "(%v)\n", err)
		default:
			w.Wait()
		}
	}
}

// printer writes transcript lines once each.
type printer struct {
	mu       sync.Mutex
	out      io.Writer
	printed  int
	expanded bool
}

func (p *printer) render(st widget.State) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// snapshots can arrive out of order
	if len(st.Messages) < p.printed {
		return
	}

	if st.Expanded != p.expanded {
		p.expanded = st.Expanded
		if st.Expanded {
			fmt.Fprintln(p.out, "[panel opened]")
		} else {
			fmt.Fprintln(p.out, "[panel closed]")
		}
	}

	for _, m := range st.Messages[p.printed:] {
		if m.From == chat.SenderBot {
			fmt.Fprintf(p.out, "bot: %s\n", m.Text)
		}
	}
	p.printed = len(st.Messages)

	if st.Busy {
		fmt.Fprintln(p.out, "...")
	}
}
