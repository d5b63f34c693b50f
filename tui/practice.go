// Package tui holds the full-screen bubbletea models for practicing and
// browsing a folder's flashcards.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/andrewpaige1/studysmart/practice"
	tea "github.com/charmbracelet/bubbletea"
)

// maxListed caps how many laid-aside questions the summary shows.
const maxListed = 5

// Practice drives a practice.Session from key presses.
type Practice struct {
	session *practice.Session
	title   string
	notice  string
}

var _ tea.Model = Practice{}

func NewPractice(title string, s *practice.Session) Practice {
	return Practice{session: s, title: title}
}

func (m Practice) Init() tea.Cmd { return nil }

func (m Practice) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.notice = ""

	s := m.session
	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	}

	var err error
	switch s.State() {
	case practice.Empty:
		return m, tea.Quit

	case practice.Ready, practice.Reviewing:
		switch key.String() {
		case "f", " ", "enter":
			err = s.Reveal()
		case "y":
			err = s.Mark(true)
		case "n":
			err = s.Mark(false)
		}

	case practice.Finished:
		switch key.String() {
		case "r":
			err = s.Restart()
		case "l":
			err = s.PracticeLaidAside()
		case "c":
			err = s.ClearLaidAside()
		}
	}

	switch {
	case errors.Is(err, practice.ErrNothingLaidAside):
		m.notice = "nothing laid aside"
	case err != nil:
		m.notice = "error: " + err.Error()
	}
	return m, nil
}

func (m Practice) View() string {
	var b strings.Builder
	s := m.session
	fmt.Fprintf(&b, "%s\n\n", m.title)

	switch s.State() {
	case practice.Empty:
		b.WriteString("no flashcards, add some to start practicing\n\npress any key to go back\n")
		return b.String()

	case practice.Ready, practice.Reviewing:
		card, _ := s.Current()
		side, label := card.Question, "question"
		if s.ShowingAnswer() {
			side, label = card.Answer, "answer"
		}
		fmt.Fprintf(&b, "[%d/%d] %s (%s)\n", s.Position()+1, s.Len(), side, label)
		if n := len(s.LaidAside()); n > 0 {
			fmt.Fprintf(&b, "laid aside: %d\n", n)
		}
		m.footer(&b, "(f)lip, (y) got it, (n) lay aside, (q)uit")

	case practice.Finished:
		score := s.Score()
		fmt.Fprintf(&b, "done! %d right, %d laid aside this round\n", score.Correct, score.Incorrect)
		if aside := s.LaidAside(); len(aside) > 0 {
			fmt.Fprintf(&b, "laid-aside cards (%d):\n", len(aside))
			for i, c := range aside {
				if i == maxListed {
					fmt.Fprintf(&b, "  ... and %d more\n", len(aside)-maxListed)
					break
				}
				fmt.Fprintf(&b, "  - %s\n", c.Question)
			}
		}
		m.footer(&b, "(r)estart, (l)aid-aside practice, (c)lear laid aside, (q)uit")
	}
	return b.String()
}

func (m Practice) footer(b *strings.Builder, help string) {
	if m.notice != "" {
		fmt.Fprintf(b, "\n%s\n", m.notice)
	}
	fmt.Fprintf(b, "\n%s\n", help)
}
