package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"usergrip/internal/domain"
)

// ReadyMarker is printed in every frame when running under the e2e harness
const ReadyMarker = "__READY__"

// Lines taken by everything except the list rows: container padding, title,
// input box, results header, selection line, status and help.
const chromeLines = 13

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Ready         bool
	Input         string // rendered text input
	InputFocused  bool
	Spinner       string
	Term          string
	Loading       bool
	Err           string
	Items         []domain.DisplayItem
	IsSelected    func(domain.AppID) bool
	SelectedCount int
	Total         int // total_count reported by the server
	Incomplete    bool
	Cursor        int
	Start         int
	End           int
	Above         bool
	Below         bool
	ListFocused   bool
	MinTermLength int
	StatusMessage string
	StatusIsError bool
	HelpView      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles     *Styles
	cardRender *CardRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(loginMaxWidth int, showAccountType bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:     styles,
		cardRender: NewCardRenderer(styles, loginMaxWidth, showAccountType),
	}
}

// Cards exposes the card renderer for detail views
func (r *Renderer) Cards() *CardRenderer {
	return r.cardRender
}

// ListHeight returns how many rows the result list may use in a terminal of the given height
func ListHeight(height int) int {
	h := height - chromeLines
	if h < 3 {
		h = 3
	}
	return h
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	if state.Ready {
		content.WriteString(r.styles.Dim.Render(ReadyMarker))
		content.WriteString("\n")
	}

	// Title with loading indicator on the right
	logo := r.styles.Title.Render("usergrip")
	titleLine := logo
	if state.Loading {
		right := r.styles.Dim.Render(strings.TrimSpace(state.Spinner + " Searching"))
		termWidth := state.Width
		if termWidth <= 0 {
			termWidth = 80 // Default terminal width
		}
		padding := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(right)
		if padding < 2 {
			padding = 2
		}
		titleLine = logo + strings.Repeat(" ", padding) + right
	}
	content.WriteString(titleLine)
	content.WriteString("\n")

	inputStyle := r.styles.Input
	if state.InputFocused {
		inputStyle = r.styles.InputFocused
	}
	content.WriteString(inputStyle.Render(state.Input))
	content.WriteString("\n")

	content.WriteString(r.renderBody(state))

	// Status and help are pinned to the bottom
	var footer []string
	if state.StatusMessage != "" {
		style := r.styles.Status
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		footer = append(footer, style.Render(state.StatusMessage))
	}
	if state.HelpView != "" {
		footer = append(footer, state.HelpView)
	}

	if len(footer) > 0 {
		currentLines := strings.Count(content.String(), "\n") + 1
		availableLines := state.Height - 2
		if availableLines <= 0 {
			availableLines = 22 // Default terminal height minus padding
		}
		footerText := strings.Join(footer, "\n")
		paddingNeeded := availableLines - currentLines - lipgloss.Height(footerText)
		if paddingNeeded > 0 {
			content.WriteString(strings.Repeat("\n", paddingNeeded))
		}
		content.WriteString("\n")
		content.WriteString(footerText)
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

// renderBody picks what to show below the input: error, loading, no results or the list
func (r *Renderer) renderBody(state ViewState) string {
	switch {
	case state.Err != "":
		return r.renderError(state.Err)
	case state.Loading:
		return "\n" + r.styles.StatusLoad.Render(fmt.Sprintf("%s Searching for \"%s\"...", state.Spinner, state.Term))
	case len(state.Items) == 0 && state.Term != "" && len([]rune(state.Term)) >= state.MinTermLength:
		return "\n" + fmt.Sprintf("No users found for \"%s\".", state.Term) + "\n" +
			r.styles.Dim.Render("Try another search term.")
	case len(state.Items) == 0 && state.Term == "":
		return "\n" + r.styles.Dim.Render("Start typing to search GitHub users.")
	default:
		return r.renderResults(state)
	}
}

func (r *Renderer) renderError(msg string) string {
	lines := []string{
		r.styles.StatusError.Render("⚠ Error while searching GitHub:"),
		msg,
		r.styles.Dim.Render("Check your connection or the GitHub service status."),
	}
	return "\n" + r.styles.ErrorBox.Render(strings.Join(lines, "\n"))
}

// renderResults renders the header line and the visible window of cards
func (r *Renderer) renderResults(state ViewState) string {
	var b strings.Builder
	b.WriteString("\n")

	header := r.styles.StatusOK.Render(fmt.Sprintf("%d results found.", len(state.Items)))
	if state.Total > len(state.Items) {
		header += r.styles.Dim.Render(fmt.Sprintf("  (%d on GitHub)", state.Total))
	}
	if state.Incomplete {
		header += r.styles.Dim.Render("  (incomplete)")
	}
	b.WriteString(header)
	b.WriteString("\n")

	if state.SelectedCount > 0 {
		b.WriteString(r.styles.Selection.Render(SelectionSummary(state.SelectedCount)))
	}
	b.WriteString("\n")

	start, end := state.Start, state.End
	if end > len(state.Items) || end <= start {
		start, end = 0, len(state.Items)
	}

	if state.Above {
		b.WriteString(r.styles.Scroll.Render("↑ (more above)"))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		item := state.Items[i]
		selected := state.IsSelected != nil && state.IsSelected(item.AppID)
		b.WriteString(r.cardRender.RenderCard(item, state.ListFocused && i == state.Cursor, selected))
		if i < end-1 || state.Below {
			b.WriteString("\n")
		}
	}
	if state.Below {
		b.WriteString(r.styles.Scroll.Render("↓ (more below)"))
	}
	return b.String()
}

// SelectionSummary returns "1 element selected", "2 elements selected", ...
func SelectionSummary(n int) string {
	if n == 1 {
		return "1 element selected"
	}
	return fmt.Sprintf("%d elements selected", n)
}
