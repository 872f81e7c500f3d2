// Package widget is the client side of the FAQ assistant: a collapsible chat
// panel holding an append-only transcript and at most one pending question.
package widget

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/zhouzirui/vitrine/backend/internal/model/chat"
	"github.com/zhouzirui/vitrine/backend/internal/model/faq"
)

// Fallback bot lines.
const (
	NoAnswerText           = "Pas de réponse trouvée."
	CommunicationErrorText = "Erreur de communication."
)

var (
	ErrCollapsed = errors.New("widget is collapsed")
	ErrEmpty     = errors.New("message is empty")
	ErrBusy      = errors.New("a question is already pending")
)

// Asker sends one question and returns the answer. An empty answer with a nil
// error means the backend replied without one.
type Asker interface {
	Ask(ctx context.Context, question string) (string, error)
}

// State is a copy of the widget at one point in time.
type State struct {
	Expanded bool
	Busy     bool
	Messages []chat.Message
}

// Widget holds the chat panel state. It is safe for concurrent use.
type Widget struct {
	asker Asker

	mu       sync.Mutex
	expanded bool
	busy     bool
	messages []chat.Message
	onChange func(State)

	wg sync.WaitGroup
}

// New returns a collapsed widget whose transcript starts with the greeting
// built from entries.
func New(asker Asker, entries []faq.Entry) *Widget {
	return &Widget{
		asker:    asker,
		messages: []chat.Message{{From: chat.SenderBot, Text: Greeting(entries)}},
	}
}

// Greeting lists the FAQ questions the assistant can help with.
func Greeting(entries []faq.Entry) string {
	var b strings.Builder
	b.WriteString("# Bonjour 👋\n\nJe peux vous aider sur les sujets suivants:\n\n")
	for _, e := range entries {
		b.WriteString("- **")
		b.WriteString(e.Question)
		b.WriteString("**\n")
	}
	b.WriteString("\n_De quoi souhaitez-vous parler ?_")
	return b.String()
}

// OnChange registers fn to be called after every state change.
func (w *Widget) OnChange(fn func(State)) {
	w.mu.Lock()
	w.onChange = fn
	w.mu.Unlock()
}

// Open expands the panel.
func (w *Widget) Open() { w.setExpanded(true) }

// Close collapses the panel. A pending question still completes.
func (w *Widget) Close() { w.setExpanded(false) }

func (w *Widget) setExpanded(v bool) {
	w.mu.Lock()
	if w.expanded == v {
		w.mu.Unlock()
		return
	}
	w.expanded = v
	w.notifyLocked()
}

// State returns a snapshot of the widget.
func (w *Widget) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

// Submit appends text as a user message and asks it in the background.
// It is rejected while collapsed, on blank text, and while a question is pending.
func (w *Widget) Submit(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)

	w.mu.Lock()
	switch {
	case !w.expanded:
		w.mu.Unlock()
		return ErrCollapsed
	case text == "":
		w.mu.Unlock()
		return ErrEmpty
	case w.busy:
		w.mu.Unlock()
		return ErrBusy
	}

	w.messages = append(w.messages, chat.Message{From: chat.SenderUser, Text: text})
	w.busy = true
	w.wg.Add(1)
	w.notifyLocked()

	go w.ask(ctx, text)
	return nil
}

// Wait blocks until no question is pending.
func (w *Widget) Wait() {
	w.wg.Wait()
}

func (w *Widget) ask(ctx context.Context, question string) {
	defer w.wg.Done()

	answer, err := w.asker.Ask(ctx, question)
	switch {
	case err != nil:
		answer = CommunicationErrorText
	case answer == "":
		answer = NoAnswerText
	}

	w.mu.Lock()
	w.messages = append(w.messages, chat.Message{From: chat.SenderBot, Text: answer})
	w.busy = false
	w.notifyLocked()
}

// notifyLocked releases w.mu before calling the observer.
func (w *Widget) notifyLocked() {
	fn := w.onChange
	state := w.snapshotLocked()
	w.mu.Unlock()

	if fn != nil {
		fn(state)
	}
}

func (w *Widget) snapshotLocked() State {
	msgs := make([]chat.Message, len(w.messages))
	copy(msgs, w.messages)
	return State{Expanded: w.expanded, Busy: w.busy, Messages: msgs}
}
