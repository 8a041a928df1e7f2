package commands

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usergrip/internal/domain"
	"usergrip/internal/eventbus"
	"usergrip/internal/identity"
	"usergrip/internal/selection"
	"usergrip/internal/ui/logic"
	"usergrip/internal/ui/state"
)

type recordingBus struct {
	eventbus.EventBus
	events []domain.DomainEvent
}

func (b *recordingBus) Publish(e domain.DomainEvent) {
	b.events = append(b.events, e)
}

type memClipboard struct {
	text string
	err  error
}

func (c *memClipboard) WriteAll(text string) error {
	c.text = text
	return c.err
}

func setup(t *testing.T, logins ...string) (*Executor, *selection.Store, *logic.Navigator, *state.AppState, *memClipboard) {
	t.Helper()
	store := selection.NewStore(identity.NewSequenceGenerator("copy"), nil)
	var users []domain.RemoteUser
	for i, l := range logins {
		users = append(users, domain.RemoteUser{ID: int64(i + 1), Login: l, ProfileURL: "https://github.com/" + l})
	}
	store.Replace(domain.NewDisplayItems(users, identity.NewSequenceGenerator("id")))

	nav := logic.NewNavigator()
	nav.SetHeight(10)
	nav.SetTotal(store.Len())

	st := state.NewAppState()
	clip := &memClipboard{}
	return NewExecutor(st, store, nav, nil, clip), store, nav, st, clip
}

func TestDeleteSelectedShrinksNavigator(t *testing.T) {
	exec, store, nav, st, _ := setup(t, "a", "b", "c")
	nav.Bottom()
	exec.ExecuteToggleSelection("id-3")

	cmd := exec.ExecuteDeleteSelected()

	assert.NotNil(t, cmd)
	assert.Equal(t, 2, store.Len())
	assert.Equal(t, 2, nav.Total())
	assert.Equal(t, 1, nav.Cursor())
	assert.Equal(t, "Deleted 1 user", st.StatusMessage)
}

func TestDeleteWithoutSelectionDoesNothing(t *testing.T) {
	exec, store, _, st, _ := setup(t, "a", "b")

	assert.Nil(t, exec.ExecuteDeleteSelected())
	assert.Equal(t, 2, store.Len())
	assert.Empty(t, st.StatusMessage)
}

func TestDuplicateSelected(t *testing.T) {
	exec, store, nav, st, _ := setup(t, "a", "b")
	exec.ExecuteSelectAll()

	exec.ExecuteDuplicateSelected()

	assert.Equal(t, 4, store.Len())
	assert.Equal(t, 4, nav.Total())
	assert.Equal(t, "Duplicated 2 users", st.StatusMessage)
	assert.False(t, store.HasSelection())
}

func TestSelectAllAndNone(t *testing.T) {
	exec, store, _, _, _ := setup(t, "a", "b")

	exec.ExecuteSelectAll()
	assert.True(t, store.AllSelected())

	exec.ExecuteDeselectAll()
	assert.Equal(t, 0, store.Count())
}

func TestCopyURL(t *testing.T) {
	exec, _, _, _, clip := setup(t, "a")

	cmd := exec.ExecuteCopyURL("https://github.com/a")
	require.NotNil(t, cmd)

	assert.Equal(t, ClipboardResultMsg{URL: "https://github.com/a"}, cmd())
	assert.Equal(t, "https://github.com/a", clip.text)
}

func TestCopyEmptyURLIsSkipped(t *testing.T) {
	exec, _, _, _, _ := setup(t, "a")

	assert.Nil(t, exec.ExecuteCopyURL(""))
}

func TestReportErrorPublishes(t *testing.T) {
	st := state.NewAppState()
	bus := &recordingBus{}
	exec := NewExecutor(st, selection.NewStore(identity.NewSequenceGenerator("x"), nil), logic.NewNavigator(), bus, nil)
	boom := errors.New("boom")

	exec.ReportError("Pager failed", boom)

	assert.Equal(t, "Pager failed: boom", st.StatusMessage)
	assert.True(t, st.StatusIsError)
	require.Len(t, bus.events, 1)
	assert.Equal(t, domain.ErrorEvent{Message: "Pager failed", Err: boom}, bus.events[0])
}
