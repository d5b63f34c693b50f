package tui_test

import (
	"testing"

	"github.com/andrewpaige1/studysmart/models"
	"github.com/andrewpaige1/studysmart/practice"
	"github.com/andrewpaige1/studysmart/repository"
	"github.com/andrewpaige1/studysmart/store/storetest"
	"github.com/andrewpaige1/studysmart/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	hund = models.Flashcard{ID: "h", Question: "Hund", Answer: "Dog"}
	katt = models.Flashcard{ID: "k", Question: "Katt", Answer: "Cat"}
)

func press(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// send feeds keys to m one at a time and reports whether the last one quit.
func send(t *testing.T, m tea.Model, keys ...string) (tea.Model, bool) {
	t.Helper()
	quit := false
	for _, k := range keys {
		var cmd tea.Cmd
		m, cmd = m.Update(press(k))
		quit = false
		if cmd != nil {
			_, quit = cmd().(tea.QuitMsg)
		}
	}
	return m, quit
}

func openSession(t *testing.T, s *storetest.Broken, cards ...models.Flashcard) (*practice.Session, *repository.Repository) {
	t.Helper()
	repo := repository.New(s, nil)
	require.NoError(t, repo.SaveCards("tyska", cards))
	session, err := practice.Open(repo, "tyska", practice.WithShuffle(func([]models.Flashcard) {}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session, repo
}

func TestPracticeRound(t *testing.T) {
	session, repo := openSession(t, &storetest.Broken{Store: storetest.Open(t)}, hund, katt)
	var m tea.Model = tui.NewPractice("Tyska", session)
	assert.Nil(t, m.Init())

	assert.Contains(t, m.View(), "[1/2] Hund (question)")

	m, quit := send(t, m, "f")
	assert.False(t, quit)
	assert.Contains(t, m.View(), "[1/2] Dog (answer)")

	m, _ = send(t, m, "y", "n")
	assert.Equal(t, practice.Finished, session.State())
	view := m.View()
	assert.Contains(t, view, "done! 1 right, 1 laid aside this round")
	assert.Contains(t, view, "laid-aside cards (1):\n  - Katt")

	aside, err := repo.LaidAside("tyska")
	require.NoError(t, err)
	assert.Equal(t, []models.Flashcard{katt}, aside)

	m, _ = send(t, m, "l")
	assert.Equal(t, practice.LaidAsideCards, session.Source())
	assert.Contains(t, m.View(), "[1/1] Katt (question)")

	m, _ = send(t, m, "enter", "y", "c")
	assert.Empty(t, session.LaidAside())

	m, _ = send(t, m, "l")
	assert.Contains(t, m.View(), "nothing laid aside")

	m, _ = send(t, m, "r")
	assert.Equal(t, practice.Ready, session.State())
	assert.NotContains(t, m.View(), "nothing laid aside")

	_, quit = send(t, m, "q")
	assert.True(t, quit)
}

func TestPracticeShowsSaveFailure(t *testing.T) {
	s := &storetest.Broken{Store: storetest.Open(t)}
	session, _ := openSession(t, s, hund)
	s.FailWrites = true

	m, quit := send(t, tui.NewPractice("Tyska", session), "n")
	assert.False(t, quit)
	assert.Equal(t, practice.Finished, session.State())
	assert.Contains(t, m.View(), "error: ")
	assert.Contains(t, m.View(), storetest.ErrInjected.Error())
}

func TestPracticeEmptyFolder(t *testing.T) {
	session, _ := openSession(t, &storetest.Broken{Store: storetest.Open(t)})
	m := tui.NewPractice("Tyska", session)

	assert.Contains(t, m.View(), "no flashcards, add some to start practicing")
	_, quit := send(t, m, "y")
	assert.True(t, quit)
}

func TestPracticeIgnoresOtherMessages(t *testing.T) {
	session, _ := openSession(t, &storetest.Broken{Store: storetest.Open(t)}, hund)
	m, cmd := tui.NewPractice("Tyska", session).Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd)
	assert.Equal(t, practice.Ready, session.State())
	assert.Contains(t, m.View(), "[1/1] Hund (question)")
}

func TestBrowse(t *testing.T) {
	b := practice.NewBrowser([]models.Flashcard{hund, katt})
	var m tea.Model = tui.NewBrowse("Tyska", b)
	assert.Contains(t, m.View(), "[1/2] Hund")

	m, _ = send(t, m, "p")
	assert.Contains(t, m.View(), "[2/2] Katt")
	m, _ = send(t, m, "f")
	assert.Contains(t, m.View(), "[2/2] Cat")
	m, _ = send(t, m, "n")
	assert.Contains(t, m.View(), "[1/2] Hund")

	_, quit := send(t, m, "esc")
	assert.True(t, quit)
}

func TestBrowseEmpty(t *testing.T) {
	m := tui.NewBrowse("Tyska", practice.NewBrowser(nil))
	assert.Contains(t, m.View(), "no flashcards to browse")
	_, quit := send(t, m, "n")
	assert.True(t, quit)
}
