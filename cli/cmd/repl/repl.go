package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/lox/log"
)

// editDoneMsg is sent when the editor closed and the buffer was handled.
type editDoneMsg struct {
	buffer string
	result result
	ran    bool
}

// editDeclinedMsg is sent when the user declined to re-edit after a compile
// error.
type editDeclinedMsg struct{ buffer string }

// editErrorMsg is sent when the editor could not be run.
type editErrorMsg struct{ err error }

// evalDoneMsg carries the result of a prompt line run off the UI loop.
type evalDoneMsg struct{ result result }

const (
	evalPrompt = "> "
	ctrlPrompt = ": "
)

const helpMessage = `
: Commands (press Esc to toggle mode):

  help     Print this message
  list     List global variables
  edit     Write a program in $EDITOR and run it
  reset    Discard all global state
  clear    Clear screen
  quit     Exit

Usage:
  Type a statement or expression; a missing trailing ";" is added
  Expression results are printed
  Press Tab / Shift-Tab to cycle through completions
  Press Esc to toggle between eval and command modes
  Use Up/Down for history, Shift+Up/Shift+Down to stay in the current mode
  Press Ctrl+C to interrupt a running line
  Press Ctrl+C on an empty line or Ctrl+D to exit`

// inputMode is the kind of line being typed.
type inputMode int

const (
	modeEval inputMode = iota
	modeCtrl
)

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	ctrlPromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")).
			Bold(true)
	inputStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	matchStyle      = suggestionStyle.Bold(true)
	selectedStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
	selectedMatchStyle = selectedStyle.Bold(true)

	signatureStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	signatureNameStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("6")).
				Bold(true)
	currentParamStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("11")).
				Bold(true)
)

// model is the Bubble Tea model for the prompt.
type model struct {
	ctxFunc      func() context.Context
	input        textinput.Model
	session      *session
	logger       log.Logger
	history      *History
	historyIdx   int
	matches      fuzzy.Matches // current fuzzy match results
	candidates   []string      // backing candidate list
	wordStart    int           // byte offset of current word start
	wordEnd      int           // byte offset of current word end
	suggIdx      int           // selected candidate index
	tabActive    bool          // whether user is tab-cycling
	preTabText   string        // input text before tab-cycling began
	preTabCursor int           // cursor position before tab-cycling began
	width        int           // terminal width for ellipsization
	quitting     bool
	mode         inputMode
	evalText     string
	evalCursor   int
	ctrlText     string
	ctrlCursor   int
	buffer       string // scratch program for the edit command
	defines      map[string]string
	interrupt    context.CancelFunc // cancels the running line; nil when idle
}

// Run starts the interactive prompt. Every line runs on one interpreter, so
// declarations persist until the session ends or is reset.
//
// If preload is not nil, it is run first as a whole program. defines are set
// as globals before anything else runs, and again after a reset.
func Run(
	ctx context.Context,
	preload io.Reader,
	cacheDir string,
	defines map[string]string,
	logger log.Logger,
) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	logger.TraceContext(
		ctx,
		"repl start",
		slog.String("cache_dir", cacheDir),
		slog.Bool("preload", preload != nil),
	)

	s := newSession(logger)

	if err := s.define(defines); err != nil {
		return err
	}

	if preload != nil {
		r, err := s.load(ctx, preload)
		fmt.Print(r.output)

		for _, msg := range r.errors {
			fmt.Println(errorStyle.Render(msg))
		}

		if err != nil {
			return err
		}
	}

	history := NewHistory(filepath.Join(cacheDir, baseHistory))
	if err := history.Load(); err != nil {
		fmt.Println(hintStyle.Render("warning: could not load history: " + err.Error()))
	}

	logger.TraceContext(
		ctx,
		"repl history loaded",
		slog.Int("entries", history.Len()),
	)

	m := newModel(ctx, s, history, logger)
	m.defines = defines

	_, err = tea.NewProgram(m, tea.WithContext(ctx)).Run()

	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}

	return err
}

const defaultWidth = 80

func newModel(
	ctx context.Context,
	s *session,
	history *History,
	logger log.Logger,
) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(evalPrompt)
	ti.Focus()
	ti.CharLimit = 4096
	ti.Width = defaultWidth

	return model{
		ctxFunc:    func() context.Context { return ctx },
		input:      ti,
		session:    s,
		logger:     logger,
		history:    history,
		historyIdx: history.Len(),
		width:      defaultWidth,
		mode:       modeEval,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(evalPrompt) - 2

		return m, nil

	case editDoneMsg:
		m.buffer = msg.buffer
		if !msg.ran {
			return m, tea.Println(hintStyle.Render("edit cancelled"))
		}

		return m, printResult(msg.result)

	case editDeclinedMsg:
		m.buffer = msg.buffer

		return m, tea.Println(hintStyle.Render("edit discarded"))

	case editErrorMsg:
		return m, tea.Println(errorStyle.Render("error: " + msg.err.Error()))

	case evalDoneMsg:
		m.interrupt = nil

		return m, printResult(msg.result)
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.running() {
		b.WriteString(hintStyle.Render("Running (press Ctrl+C to interrupt)"))
		b.WriteString("\n")

		return b.String()
	}

	input := m.input.Value()
	call := detectFunctionCall(input, m.input.Position())

	switch {
	case m.historyIdx < m.history.Len():
		pos := lipgloss.NewStyle().Bold(true).Render(strconv.Itoa(m.historyIdx + 1))
		b.WriteString(hintStyle.Render(pos + "/" + strconv.Itoa(m.history.Len())))

	case strings.TrimSpace(input) == "":
		hint := "Type a statement or expression, or press Esc for commands"
		if m.mode == modeCtrl {
			hint = "Type: " + strings.Join(ctrlCommands, ", ") + " (press Esc to return)"
		}

		b.WriteString(hintStyle.Render(hint))

	case call.inCall && m.mode == modeEval && len(m.matches) == 0:
		if params, ok := m.session.signature(call.name); ok {
			b.WriteString(renderSignatureHint(call.name, params, call.argIndex))
		}

	default:
		b.WriteString(m.renderCandidateBar())
	}

	b.WriteString("\n")

	return b.String()
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	// The session belongs to the running line until it finishes.
	if m.running() {
		if msg.Type == tea.KeyCtrlC {
			m.interrupt()
		}

		return m, nil
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")
		m.tabActive = false
		m.historyIdx = m.history.Len()
		m.refreshMatches(false)

		return m, nil

	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		return m, nil

	case tea.KeyEnter:
		if !m.tabActive || len(m.matches) == 0 {
			return m.executeInput()
		}

		// Lock in the current tab candidate without executing.
		m.tabActive = false
		m.refreshMatches(true)

		return m, nil

	case tea.KeyTab:
		return m.cycle(1), nil

	case tea.KeyShiftTab:
		return m.cycle(-1), nil

	case tea.KeyUp:
		return m.historyMove(-1, false), nil

	case tea.KeyDown:
		return m.historyMove(1, false), nil

	case tea.KeyShiftUp:
		return m.historyMove(-1, true), nil

	case tea.KeyShiftDown:
		return m.historyMove(1, true), nil

	case tea.KeyEsc:
		if m.tabActive {
			m.tabActive = false
			m.input.SetValue(m.preTabText)
			m.input.SetCursor(m.preTabCursor)
			m.refreshMatches(false)

			return m, nil
		}

		if m.mode == modeEval {
			return m.switchToMode(modeCtrl), nil
		}

		return m.switchToMode(modeEval), nil

	case tea.KeyRunes, tea.KeySpace:
		if m.tabActive && msg.Type == tea.KeySpace {
			m.tabActive = false
		}

		var cmd tea.Cmd

		m.historyIdx = m.history.Len()
		m.input, cmd = m.input.Update(msg)
		m.refreshMatches(true)

		return m, cmd
	}

	// Any other key edits or moves the cursor without auto-confirming.
	var cmd tea.Cmd

	m.tabActive = false
	m.historyIdx = m.history.Len()
	m.input, cmd = m.input.Update(msg)
	m.refreshMatches(false)

	return m, cmd
}

// cycle moves the tab selection by step, wrapping at either end. A single
// candidate is completed immediately.
func (m model) cycle(step int) model {
	switch len(m.matches) {
	case 0:
		return m

	case 1:
		m.replaceCurrentWord(m.matches[0].Str)
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil

		return m
	}

	n := len(m.matches)

	switch {
	case m.tabActive:
		m.suggIdx = (m.suggIdx + step + n) % n
	case step > 0:
		m.tabActive = true
		m.preTabText = m.input.Value()
		m.preTabCursor = m.input.Position()
		m.suggIdx = 0
	default:
		m.tabActive = true
		m.preTabText = m.input.Value()
		m.preTabCursor = m.input.Position()
		m.suggIdx = n - 1
	}

	m.replaceCurrentWord(m.matches[m.suggIdx].Str)

	return m
}

// replaceCurrentWord replaces the word under the cursor with replacement and
// moves the cursor to its end.
func (m *model) replaceCurrentWord(replacement string) {
	input := m.input.Value()

	m.input.SetValue(input[:m.wordStart] + replacement + input[m.wordEnd:])
	m.input.SetCursor(m.wordStart + len(replacement))

	m.wordEnd = m.wordStart + len(replacement)
}

// refreshMatches recomputes the candidates for the word under the cursor.
// With autoConfirm, a word that already equals its only candidate is
// accepted so the bar disappears.
func (m *model) refreshMatches(autoConfirm bool) {
	m.matches, m.candidates, m.wordStart, m.wordEnd = m.computeMatches()

	if !m.tabActive {
		m.suggIdx = -1
	}

	if !autoConfirm || len(m.matches) != 1 {
		return
	}

	if m.input.Value()[m.wordStart:m.wordEnd] == m.matches[0].Str {
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil
	}
}

func (m model) executeInput() (model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	if input == "" {
		return m, nil
	}

	m.evalText, m.evalCursor = "", 0
	m.ctrlText, m.ctrlCursor = "", 0
	m.input.SetValue("")
	m.matches = nil

	if err := m.history.Add(input, m.mode); err != nil {
		m.logger.WarnContext(m.ctxFunc(), "history write failed", slog.Any("error", err))
	}

	m.historyIdx = m.history.Len()

	if m.mode == modeCtrl {
		return m.executeCommand(input)
	}

	echo := tea.Println(promptStyle.Render(evalPrompt) + inputStyle.Render(input))

	ctx, cancel := context.WithCancel(m.ctxFunc())
	m.interrupt = cancel

	return m, tea.Sequence(echo, evalLine(ctx, cancel, m.session, input))
}

// evalLine runs input on s outside the UI loop, so that a key press can
// cancel ctx while the line runs.
func evalLine(
	ctx context.Context,
	cancel context.CancelFunc,
	s *session,
	input string,
) tea.Cmd {
	return func() tea.Msg {
		defer cancel()

		return evalDoneMsg{result: s.eval(ctx, input)}
	}
}

// running reports whether a prompt line is being evaluated.
func (m model) running() bool { return m.interrupt != nil }

// printResult prints the program output followed by any errors.
func printResult(r result) tea.Cmd {
	var cmds []tea.Cmd

	if out := strings.TrimSuffix(r.output, "\n"); r.output != "" {
		cmds = append(cmds, tea.Println(resultStyle.Render(out)))
	}

	for _, msg := range r.errors {
		cmds = append(cmds, tea.Println(errorStyle.Render(msg)))
	}

	return tea.Sequence(cmds...)
}

func (m model) executeCommand(input string) (model, tea.Cmd) {
	fields := strings.Fields(input)
	echo := tea.Println(ctrlPromptStyle.Render(ctrlPrompt) + inputStyle.Render(input))

	m.logger.TraceContext(m.ctxFunc(), "repl command", slog.String("command", fields[0]))

	switch fields[0] {
	case "q", "quit", "exit":
		m.quitting = true

		return m, tea.Sequence(echo, tea.Quit)

	case "h", "help":
		return m, tea.Sequence(echo, tea.Println(helpMessage))

	case "l", "list":
		return m, tea.Sequence(echo, tea.Println(m.listGlobals()))

	case "c", "clear":
		return m, tea.ClearScreen

	case "r", "reset":
		s := newSession(m.logger)
		if err := s.define(m.defines); err != nil {
			return m, tea.Sequence(echo, tea.Println(errorStyle.Render(err.Error())))
		}

		m.session = s

		return m, tea.Sequence(echo, tea.Println(hintStyle.Render("globals reset")))

	case "e", "edit":
		return m, tea.Sequence(echo, m.edit())

	default:
		return m, tea.Println(
			errorStyle.Render("Unknown command: " + fields[0] + " (try 'help')"),
		)
	}
}

func (m model) edit() tea.Cmd {
	cmd := &editCommand{
		ctxFunc: m.ctxFunc,
		session: m.session,
		buffer:  m.buffer,
	}

	return tea.Exec(cmd, func(err error) tea.Msg {
		switch {
		case errors.Is(err, ErrEditDeclined):
			return editDeclinedMsg{buffer: cmd.buffer}
		case err != nil:
			return editErrorMsg{err: err}
		}

		return editDoneMsg{buffer: cmd.buffer, result: cmd.result, ran: cmd.ran}
	})
}

// historyMove steps through history by step. With sameMode, entries from
// the other mode are skipped; otherwise the mode follows the entry.
func (m model) historyMove(step int, sameMode bool) model {
	for i := m.historyIdx + step; i >= 0 && i < m.history.Len(); i += step {
		entry, err := m.history.Entry(i)
		if err != nil || (sameMode && entry.Mode != m.mode) {
			continue
		}

		if entry.Mode != m.mode {
			m = m.switchToMode(entry.Mode)
		}

		m.historyIdx = i
		m.input.SetValue(entry.Line)
		m.input.SetCursor(len(entry.Line))
		m.refreshMatches(false)

		return m
	}

	if step > 0 && m.historyIdx < m.history.Len() {
		m.historyIdx = m.history.Len()
		m.input.SetValue("")
		m.refreshMatches(false)
	}

	return m
}

// listGlobals renders each global with a short preview of its value.
func (m model) listGlobals() string {
	var b strings.Builder

	for _, name := range m.session.globals() {
		fmt.Fprintf(&b, "  %s %s\n", name, hintStyle.Render(preview(m.session.lookup(name))))
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// switchToMode switches to mode, saving the input of the current one and
// restoring the input last typed in the other.
func (m model) switchToMode(mode inputMode) model {
	if m.mode == modeEval {
		m.evalText, m.evalCursor = m.input.Value(), m.input.Position()
	} else {
		m.ctrlText, m.ctrlCursor = m.input.Value(), m.input.Position()
	}

	m.mode = mode

	if mode == modeEval {
		m.input.Prompt = promptStyle.Render(evalPrompt)
		m.input.SetValue(m.evalText)
		m.input.SetCursor(m.evalCursor)
	} else {
		m.input.Prompt = ctrlPromptStyle.Render(ctrlPrompt)
		m.input.SetValue(m.ctrlText)
		m.input.SetCursor(m.ctrlCursor)
	}

	m.refreshMatches(false)

	return m
}
