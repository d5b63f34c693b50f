package tui

import (
	"fmt"
	"strings"

	"github.com/andrewpaige1/studysmart/practice"
	tea "github.com/charmbracelet/bubbletea"
)

// Browse pages through a folder's cards in order.
type Browse struct {
	browser *practice.Browser
	title   string
}

var _ tea.Model = Browse{}

func NewBrowse(title string, b *practice.Browser) Browse {
	return Browse{browser: b, title: title}
}

func (m Browse) Init() tea.Cmd { return nil }

func (m Browse) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.browser.Len() == 0 {
		return m, tea.Quit
	}
	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "f", " ", "enter":
		m.browser.Flip()
	case "n", "right", "l":
		m.browser.Next()
	case "p", "left", "h":
		m.browser.Prev()
	}
	return m, nil
}

func (m Browse) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", m.title)
	card, ok := m.browser.Current()
	if !ok {
		b.WriteString("no flashcards to browse\n\npress any key to go back\n")
		return b.String()
	}
	side := card.Question
	if m.browser.ShowingAnswer() {
		side = card.Answer
	}
	fmt.Fprintf(&b, "[%d/%d] %s\n\n(f)lip, (n)ext, (p)revious, (q)uit\n", m.browser.Index()+1, m.browser.Len(), side)
	return b.String()
}
