package repl

import (
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/lox/lang/runtime"
	"github.com/ardnew/lox/lang/token"
)

// ctrlCommands are the available control-mode commands.
var ctrlCommands = []string{"help", "list", "edit", "clear", "reset", "quit"}

// isIdentRune reports whether r may appear in a Lox identifier.
func isIdentRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// wordBounds returns the identifier at the cursor position and its byte
// boundaries within input. The word is empty when the cursor sits between two
// non-identifier characters.
func wordBounds(input string, cursor int) (word string, start, end int) {
	cursor = min(max(cursor, 0), len(input))

	start = cursor

	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if !isIdentRune(r) {
			break
		}

		start -= size
	}

	end = cursor

	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if !isIdentRune(r) {
			break
		}

		end += size
	}

	return input[start:end], start, end
}

// receiver returns the identifier immediately before the "." that precedes
// the word starting at wordStart, or "" if the word is not a property access
// on a plain variable.
func receiver(input string, wordStart int) string {
	prefix := strings.TrimRight(input[:wordStart], " \t")

	prefix, ok := strings.CutSuffix(prefix, ".")
	if !ok {
		return ""
	}

	prefix = strings.TrimRight(prefix, " \t")

	name, start, _ := wordBounds(prefix, len(prefix))
	if name == "" || (name[0] >= '0' && name[0] <= '9') {
		return ""
	}

	// Reject chains such as a.b.c, whose receiver is not a global.
	if before := strings.TrimRight(prefix[:start], " \t"); strings.HasSuffix(before, ".") {
		return ""
	}

	return name
}

// topLevelCandidates returns the reserved words followed by the globals.
func (m model) topLevelCandidates() []string {
	names := slices.Sorted(slices.Values(token.Keywords()))

	return append(names, m.session.globals()...)
}

// memberCandidates returns the properties reachable from the named global:
// the fields and methods of an instance, or the methods of a class.
func (m model) memberCandidates(name string) []string {
	switch v := m.session.lookup(name).(type) {
	case *runtime.Instance:
		names := v.Fields()
		for _, method := range v.Class().Methods() {
			if !slices.Contains(names, method) {
				names = append(names, method)
			}
		}

		return names

	case *runtime.Class:
		return v.Methods()
	}

	return nil
}

// computeMatches calculates the fuzzy match results for the word at the
// cursor. When the word is empty at the top level it returns no matches, so
// the hint line stays visible. Directly after "obj." every member of obj is
// offered unfiltered.
func (m model) computeMatches() (
	matches fuzzy.Matches,
	candidates []string,
	wordStart, wordEnd int,
) {
	input := m.input.Value()

	word, wordStart, wordEnd := wordBounds(input, m.input.Position())

	if m.mode == modeCtrl {
		if word == "" {
			return nil, nil, wordStart, wordEnd
		}

		return fuzzy.Find(word, ctrlCommands), ctrlCommands, wordStart, wordEnd
	}

	recv := receiver(input, wordStart)
	if recv != "" {
		candidates = m.memberCandidates(recv)
	} else {
		candidates = m.topLevelCandidates()
	}

	if len(candidates) == 0 {
		return nil, nil, wordStart, wordEnd
	}

	if word == "" {
		if recv == "" {
			return nil, nil, wordStart, wordEnd
		}

		matches = make(fuzzy.Matches, len(candidates))
		for i, c := range candidates {
			matches[i] = fuzzy.Match{Str: c, Index: i}
		}

		return matches, candidates, wordStart, wordEnd
	}

	return fuzzy.Find(word, candidates), candidates, wordStart, wordEnd
}

// renderCandidateBar builds the single-line completion bar, ellipsized to
// fit within width. The selected candidate uses the selected style while
// tab-cycling.
func (m model) renderCandidateBar() string {
	if len(m.matches) == 0 || m.width <= 0 {
		return ""
	}

	const sep = "  "

	sepWidth := lipgloss.Width(sep)
	ellipsis := hintStyle.Render("...")
	ellipsisWidth := lipgloss.Width(ellipsis)

	var b strings.Builder

	used := 0

	for i, match := range m.matches {
		rendered := m.renderCandidate(match, m.tabActive && i == m.suggIdx)

		entryWidth := lipgloss.Width(rendered)
		if i > 0 {
			entryWidth += sepWidth
		}

		last := i == len(m.matches)-1
		if i > 0 && used+entryWidth+ellipsisWidth > m.width && !last {
			b.WriteString(sep)
			b.WriteString(ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += entryWidth
	}

	return b.String()
}

// renderCandidate renders a candidate with its matched characters
// highlighted. Callable globals are shown with a "()" suffix that is not
// part of the completion.
func (m model) renderCandidate(match fuzzy.Match, selected bool) string {
	base, highlight := suggestionStyle, matchStyle
	if selected {
		base, highlight = selectedStyle, selectedMatchStyle
	}

	var b strings.Builder

	for i, r := range match.Str {
		if slices.Contains(match.MatchedIndexes, i) {
			b.WriteString(highlight.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}

	if _, ok := m.session.lookup(match.Str).(runtime.Callable); ok {
		b.WriteString(base.Render("()"))
	}

	return b.String()
}

// preview returns a one-line description of a global value for the list
// command.
func preview(v runtime.Value) string {
	switch v := v.(type) {
	case *runtime.Function:
		return "fun(" + strings.Join(v.Params(), ", ") + ")"

	case *runtime.Native:
		return "native fun/" + strconv.Itoa(v.Arity())

	case *runtime.Class:
		s := "class"
		if sup := v.Superclass(); sup != nil {
			s += " < " + sup.Name()
		}

		return s

	case *runtime.Instance:
		return v.String()

	case runtime.String:
		return strconv.Quote(string(v))

	case nil:
		return "<undefined>"
	}

	return v.String()
}
