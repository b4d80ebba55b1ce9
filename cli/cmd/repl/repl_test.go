package repl

import (
	"context"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/lox/log"
)

func TestModel_InterruptRunningLine(t *testing.T) {
	m := typed(testModel(t), "while (true) {}")

	m, cmd := m.executeInput()
	if cmd == nil || !m.running() {
		t.Fatalf("executeInput() did not start the line: running = %v", m.running())
	}

	interrupted := 0
	m.interrupt = func() { interrupted++ }

	// Other keys are ignored while the line runs.
	m = typed(m, "x")
	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})

	if !m.running() || m.history.Len() != 1 {
		t.Errorf("Enter while running: running = %v, history = %d", m.running(), m.history.Len())
	}

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlC})

	if interrupted != 1 || m.quitting {
		t.Errorf("Ctrl+C while running: interrupted = %d, quitting = %v", interrupted, m.quitting)
	}

	next, _ := m.Update(evalDoneMsg{result: result{errors: []string{"Interrupted."}}})
	if next.(model).running() {
		t.Error("model still running after the line finished")
	}
}

func TestEvalLine_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	msg := evalLine(ctx, cancel, newSession(log.Logger{}), "while (true) {}")()

	done, ok := msg.(evalDoneMsg)
	if !ok {
		t.Fatalf("evalLine() message = %T, want evalDoneMsg", msg)
	}

	if !slices.Equal(done.result.errors, []string{"Interrupted."}) {
		t.Errorf("errors = %q", done.result.errors)
	}
}

func TestHelpMessage(t *testing.T) {
	// tea.Println adds the line break itself.
	if strings.HasSuffix(helpMessage, "\n") {
		t.Error("helpMessage ends with a newline")
	}

	if !strings.Contains(helpMessage, "interrupt a running line") {
		t.Error("helpMessage does not mention interrupting")
	}
}
