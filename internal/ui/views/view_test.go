package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"usergrip/internal/domain"
)

func displayItems(logins ...string) []domain.DisplayItem {
	out := make([]domain.DisplayItem, 0, len(logins))
	for i, l := range logins {
		out = append(out, domain.DisplayItem{
			AppID: domain.AppID("id-" + l),
			User: domain.RemoteUser{
				ID:          int64(100 + i),
				Login:       l,
				ProfileURL:  "https://github.com/" + l,
				AccountType: "User",
			},
		})
	}
	return out
}

func baseState() ViewState {
	return ViewState{Width: 100, Height: 40, MinTermLength: 3}
}

func TestRenderPrecedence(t *testing.T) {
	r := NewRenderer(10, true)

	tests := []struct {
		name     string
		mutate   func(*ViewState)
		contains []string
		absent   []string
	}{
		{
			name: "error wins over loading and results",
			mutate: func(s *ViewState) {
				s.Err = "Rate limit exceeded. Please try again in 50 seconds"
				s.Loading = true
				s.Term = "octo"
				s.Items = displayItems("octocat")
			},
			contains: []string{"Error while searching GitHub:", "Rate limit exceeded. Please try again in 50 seconds"},
			absent:   []string{"Searching for", "results found"},
		},
		{
			name: "loading wins over results",
			mutate: func(s *ViewState) {
				s.Loading = true
				s.Term = "octo"
				s.Items = displayItems("octocat")
			},
			contains: []string{`Searching for "octo"...`},
			absent:   []string{"results found", "octocat"},
		},
		{
			name: "no users for long term",
			mutate: func(s *ViewState) {
				s.Term = "zzzzzz"
			},
			contains: []string{`No users found for "zzzzzz".`, "Try another search term."},
		},
		{
			name: "short term shows empty results instead of notice",
			mutate: func(s *ViewState) {
				s.Term = "zz"
			},
			contains: []string{"0 results found."},
			absent:   []string{"No users found"},
		},
		{
			name:     "idle",
			mutate:   func(s *ViewState) {},
			contains: []string{"Start typing"},
		},
		{
			name: "results with selection",
			mutate: func(s *ViewState) {
				s.Term = "octo"
				s.Items = displayItems("octocat", "octodog")
				s.SelectedCount = 2
				s.IsSelected = func(id domain.AppID) bool { return true }
			},
			contains: []string{"2 results found.", "2 elements selected", "[x]", "octocat", "#100", "https://github.com/octodog"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := baseState()
			tt.mutate(&s)
			out := r.Render(s)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.absent {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}

func TestRenderWindowIndicators(t *testing.T) {
	r := NewRenderer(10, false)
	s := baseState()
	s.Term = "user"
	s.Items = displayItems("a", "b", "c", "d", "e")
	s.Start, s.End = 1, 3
	s.Above, s.Below = true, true

	out := r.Render(s)

	assert.Contains(t, out, "↑ (more above)")
	assert.Contains(t, out, "↓ (more below)")
	assert.Contains(t, out, "github.com/b")
	assert.NotContains(t, out, "github.com/a")
	assert.NotContains(t, out, "github.com/d")
}

func TestRenderReadyMarker(t *testing.T) {
	r := NewRenderer(10, true)
	s := baseState()

	assert.NotContains(t, r.Render(s), ReadyMarker)
	s.Ready = true
	assert.Contains(t, r.Render(s), ReadyMarker)
}

func TestRenderFooter(t *testing.T) {
	r := NewRenderer(10, true)
	s := baseState()
	s.StatusMessage = "Copied https://github.com/octocat"
	s.HelpView = "? help"

	out := r.Render(s)

	assert.Contains(t, out, "Copied https://github.com/octocat")
	assert.True(t, strings.Index(out, "Copied") < strings.Index(out, "? help"))
}

func TestCropLogin(t *testing.T) {
	tests := []struct {
		login    string
		limit    int
		expected string
	}{
		{"short", 10, "short"},
		{"exactlyten", 10, "exactlyten"},
		{"elevenchars", 10, "elevenchar..."},
		{"ünïcödé-lögin", 5, "ünïcö..."},
		{"anything", 0, "anything"},
	}

	for _, tt := range tests {
		t.Run(tt.login, func(t *testing.T) {
			assert.Equal(t, tt.expected, CropLogin(tt.login, tt.limit))
		})
	}
}

func TestRenderCardShowsAccountTypeWhenEnabled(t *testing.T) {
	item := displayItems("octocat")[0]
	item.User.AccountType = "Organization"

	with := NewCardRenderer(NewStyles(), 10, true).RenderCard(item, false, false)
	without := NewCardRenderer(NewStyles(), 10, false).RenderCard(item, false, false)

	assert.Contains(t, with, "Organization")
	assert.NotContains(t, without, "Organization")
	assert.Contains(t, without, "[ ]")
}

func TestRenderDetail(t *testing.T) {
	item := displayItems("octocat")[0]
	item.User.AvatarURL = "https://avatars.example/octocat"

	out := NewCardRenderer(NewStyles(), 10, true).RenderDetail(item)

	assert.Contains(t, out, "https://avatars.example/octocat")
	assert.Contains(t, out, "id-octocat")
}

func TestSelectionSummary(t *testing.T) {
	assert.Equal(t, "1 element selected", SelectionSummary(1))
	assert.Equal(t, "3 elements selected", SelectionSummary(3))
}

func TestListHeight(t *testing.T) {
	assert.Equal(t, 27, ListHeight(40))
	assert.Equal(t, 3, ListHeight(5))
}
