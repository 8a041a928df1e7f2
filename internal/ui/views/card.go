package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"usergrip/internal/domain"
)

// CardRenderer handles rendering of user cards
type CardRenderer struct {
	styles          *Styles
	loginMaxWidth   int
	showAccountType bool
}

// NewCardRenderer creates a new card renderer
func NewCardRenderer(styles *Styles, loginMaxWidth int, showAccountType bool) *CardRenderer {
	return &CardRenderer{
		styles:          styles,
		loginMaxWidth:   loginMaxWidth,
		showAccountType: showAccountType,
	}
}

// RenderCard renders one list row: checkbox, id, login, type and profile link
func (r *CardRenderer) RenderCard(item domain.DisplayItem, isCursor, isSelected bool) string {
	// Background color for the cursor row
	bgColor := ""
	if isCursor {
		bgColor = "238"
	}
	bg := lipgloss.NewStyle().Background(lipgloss.Color(bgColor))

	var parts []string

	checkbox := "[ ]"
	checkStyle := bg
	if isSelected {
		checkbox = "[x]"
		checkStyle = r.styles.Checked.Background(lipgloss.Color(bgColor))
	}
	parts = append(parts, checkStyle.Render(checkbox))
	parts = append(parts, bg.Render(" "))

	id := fmt.Sprintf("#%-9d", item.User.ID)
	parts = append(parts, r.styles.CardID.Background(lipgloss.Color(bgColor)).Render(id))
	parts = append(parts, bg.Render(" "))

	login := CropLogin(item.User.Login, r.loginMaxWidth)
	// pad to the cropped width plus ellipsis so columns line up
	pad := r.loginMaxWidth + 3 - lipgloss.Width(login)
	if pad < 0 {
		pad = 0
	}
	parts = append(parts, r.styles.CardLogin.Background(lipgloss.Color(bgColor)).Render(login))
	parts = append(parts, bg.Render(strings.Repeat(" ", pad+1)))

	if r.showAccountType && item.User.AccountType != "" {
		typeStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(AccountTypeColor(item.User.AccountType))).
			Background(lipgloss.Color(bgColor))
		parts = append(parts, typeStyle.Render(fmt.Sprintf("%-12s", item.User.AccountType)))
		parts = append(parts, bg.Render(" "))
	}

	parts = append(parts, r.styles.CardURL.Background(lipgloss.Color(bgColor)).Render(item.User.ProfileURL))

	return strings.Join(parts, "")
}

// RenderDetail renders the full card for the pager
func (r *CardRenderer) RenderDetail(item domain.DisplayItem) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render(item.User.Login))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "  ID        %d\n", item.User.ID)
	fmt.Fprintf(&b, "  Login     %s\n", item.User.Login)
	fmt.Fprintf(&b, "  Type      %s\n", item.User.AccountType)
	fmt.Fprintf(&b, "  Profile   %s\n", item.User.ProfileURL)
	fmt.Fprintf(&b, "  Avatar    %s\n", item.User.AvatarURL)
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render(fmt.Sprintf("  local id  %s", item.AppID)))
	b.WriteString("\n")
	return b.String()
}

// CropLogin shortens logins longer than limit runes to their first limit runes plus "..."
func CropLogin(login string, limit int) string {
	runes := []rune(login)
	if limit <= 0 || len(runes) <= limit {
		return login
	}
	return string(runes[:limit]) + "..."
}
