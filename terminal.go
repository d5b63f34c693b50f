package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/andrewpaige1/studysmart/catalog"
	"github.com/andrewpaige1/studysmart/models"
	"github.com/andrewpaige1/studysmart/practice"
	"github.com/andrewpaige1/studysmart/repository"
	"github.com/andrewpaige1/studysmart/tui"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// errQuit ends the program from any menu.
var errQuit = errors.New("quit")

// terminal reads menu commands line by line and hands practice and browsing
// over to bubbletea programs.
type terminal struct {
	in     *bufio.Scanner
	out    io.Writer
	cat    *catalog.Catalog
	repo   *repository.Repository
	logger *zap.Logger

	sessionOpts []practice.Option
	runProgram  func(tea.Model) error
}

func newTerminal(in io.Reader, out io.Writer, cat *catalog.Catalog, repo *repository.Repository, logger *zap.Logger) *terminal {
	return &terminal{
		in:          bufio.NewScanner(in),
		out:         out,
		cat:         cat,
		repo:        repo,
		logger:      logger,
		sessionOpts: []practice.Option{practice.WithLogger(logger)},
		runProgram: func(m tea.Model) error {
			_, err := tea.NewProgram(m, tea.WithInput(in), tea.WithOutput(out)).Run()
			return err
		},
	}
}

func (t *terminal) printf(format string, args ...any) {
	fmt.Fprintf(t.out, format, args...)
}

// ask prints a prompt and reads one line. io.EOF means input is exhausted.
func (t *terminal) ask(prompt string) (string, error) {
	t.printf("%s", prompt)
	if !t.in.Scan() {
		if err := t.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(t.in.Text()), nil
}

func (t *terminal) run() error {
	t.printf("StudySmart\n")
	for {
		line, err := t.ask("\nfolders> ")
		if err != nil {
			return ignoreEnd(err)
		}
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "":
		case "ls", "list":
			t.listFolders()
		case "new":
			err = t.newFolder()
		case "open":
			err = t.withFolder(arg, t.folderMenu)
		case "due":
			err = t.setDue(arg)
		case "rm", "delete":
			err = t.withFolder(arg, t.deleteFolder)
		case "help":
			t.printf("commands: ls, new, open <n>, due <n> <yyyy-mm-dd|none>, rm <n>, quit\n")
		case "quit", "exit", "q":
			return nil
		default:
			t.printf("unknown command %q, try help\n", cmd)
		}
		if err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			t.logger.Error("Command failed", zap.String("command", cmd), zap.Error(err))
			t.printf("error: %v\n", err)
		}
	}
}

func ignoreEnd(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (t *terminal) listFolders() {
	folders := t.cat.List()
	if len(folders) == 0 {
		t.printf("no folders yet, create one with new\n")
		return
	}
	for i, f := range folders {
		t.printf("%d. %s", i+1, f.Title)
		if f.Description != "" {
			t.printf(" (%s)", f.Description)
		}
		if f.DueDate != nil {
			t.printf(" due %s", f.DueDate.Format(dateLayout))
		}
		t.printf("\n")
	}
}

func (t *terminal) newFolder() error {
	title, err := t.ask("title: ")
	if err != nil {
		return err
	}
	desc, err := t.ask("description: ")
	if err != nil {
		return err
	}
	f, err := t.cat.Create(title, desc)
	if errors.Is(err, catalog.ErrEmptyTitle) {
		t.printf("a folder needs a title\n")
		return nil
	}
	if err != nil {
		return err
	}
	t.printf("created %s\n", f.Title)
	return nil
}

// pick resolves a 1-based position in list of length n.
func pick(arg string, n int) (int, bool) {
	i, err := strconv.Atoi(arg)
	if err != nil || i < 1 || i > n {
		return 0, false
	}
	return i - 1, true
}

func (t *terminal) withFolder(arg string, fn func(models.Folder) error) error {
	folders := t.cat.List()
	i, ok := pick(arg, len(folders))
	if !ok {
		t.printf("no folder %q\n", arg)
		return nil
	}
	return fn(folders[i])
}

func (t *terminal) deleteFolder(f models.Folder) error {
	if err := t.cat.Delete(f.ID); err != nil {
		return err
	}
	t.printf("deleted %s\n", f.Title)
	return nil
}

func (t *terminal) setDue(arg string) error {
	n, date, _ := strings.Cut(arg, " ")
	return t.withFolder(n, func(f models.Folder) error {
		date = strings.TrimSpace(date)
		if date == "none" {
			_, err := t.cat.ClearDueDate(f.ID)
			return err
		}
		due, err := time.Parse(dateLayout, date)
		if err != nil {
			t.printf("dates look like %s\n", dateLayout)
			return nil
		}
		_, err = t.cat.SetDueDate(f.ID, due)
		return err
	})
}

func (t *terminal) folderMenu(f models.Folder) error {
	t.printf("%s\n", f.Title)
	if f.Description != "" {
		t.printf("%s\n", f.Description)
	}
	for {
		line, err := t.ask("\n" + f.Title + "> ")
		if err != nil {
			return err
		}
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "":
		case "ls", "cards":
			err = t.listCards(f)
		case "add":
			err = t.addCard(f)
		case "edit":
			err = t.editCard(f, arg)
		case "rm":
			err = t.removeCard(f, arg)
		case "practice", "p":
			err = t.practice(f)
		case "browse", "b":
			err = t.browse(f)
		case "help":
			t.printf("commands: ls, add, edit <n>, rm <n>, practice, browse, back, quit\n")
		case "back":
			return nil
		case "quit", "q":
			return errQuit
		default:
			t.printf("unknown command %q, try help\n", cmd)
		}
		if err != nil {
			if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
				return err
			}
			t.logger.Error("Command failed", zap.String("folder", f.ID), zap.String("command", cmd), zap.Error(err))
			t.printf("error: %v\n", err)
		}
	}
}

func (t *terminal) listCards(f models.Folder) error {
	cards, err := t.cat.Cards(f.ID)
	if err != nil {
		return err
	}
	if len(cards) == 0 {
		t.printf("nothing here yet, add cards with add\n")
		return nil
	}
	for i, c := range cards {
		t.printf("%d. %s / %s\n", i+1, c.Question, c.Answer)
	}
	return nil
}

func (t *terminal) addCard(f models.Folder) error {
	q, err := t.ask("question: ")
	if err != nil {
		return err
	}
	a, err := t.ask("answer: ")
	if err != nil {
		return err
	}
	if _, err := t.cat.AddCard(f.ID, q, a); errors.Is(err, catalog.ErrEmptyCard) {
		t.printf("a card needs both a question and an answer\n")
		return nil
	} else if err != nil {
		return err
	}
	t.printf("saved!\n")
	return nil
}

func (t *terminal) cardAt(f models.Folder, arg string) (models.Flashcard, bool, error) {
	cards, err := t.cat.Cards(f.ID)
	if err != nil {
		return models.Flashcard{}, false, err
	}
	i, ok := pick(arg, len(cards))
	if !ok {
		t.printf("no card %q\n", arg)
		return models.Flashcard{}, false, nil
	}
	return cards[i], true, nil
}

func (t *terminal) editCard(f models.Folder, arg string) error {
	card, ok, err := t.cardAt(f, arg)
	if err != nil || !ok {
		return err
	}
	q, err := t.ask(fmt.Sprintf("question [%s]: ", card.Question))
	if err != nil {
		return err
	}
	a, err := t.ask(fmt.Sprintf("answer [%s]: ", card.Answer))
	if err != nil {
		return err
	}
	if q == "" {
		q = card.Question
	}
	if a == "" {
		a = card.Answer
	}
	if _, err := t.cat.EditCard(f.ID, card.ID, q, a); err != nil {
		return err
	}
	t.printf("saved!\n")
	return nil
}

func (t *terminal) removeCard(f models.Folder, arg string) error {
	card, ok, err := t.cardAt(f, arg)
	if err != nil || !ok {
		return err
	}
	return t.cat.RemoveCard(f.ID, card.ID)
}

// practice runs one session as a full-screen program.
func (t *terminal) practice(f models.Folder) error {
	return practice.Run(t.repo, f.ID, func(s *practice.Session) error {
		if s.State() == practice.Empty {
			t.printf("no flashcards, add some to start practicing\n")
			return nil
		}
		return t.runProgram(tui.NewPractice(f.Title, s))
	}, t.sessionOpts...)
}

func (t *terminal) browse(f models.Folder) error {
	cards, err := t.cat.Cards(f.ID)
	if err != nil {
		return err
	}
	if len(cards) == 0 {
		t.printf("no flashcards to browse\n")
		return nil
	}
	return t.runProgram(tui.NewBrowse(f.Title, practice.NewBrowser(cards)))
}
