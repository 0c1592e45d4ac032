// Package session runs the interactive menu loop over a task store.
//
// The loop is a small state machine. MENU is the initial state and every
// state except EXIT returns to it. Input errors (empty fields, bad dates,
// unknown titles, unknown menu choices) are reported with an "ERROR:"
// prefix and the loop continues.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/mesh-intelligence/taskman/internal/store"
	"github.com/mesh-intelligence/taskman/pkg/types"
)

// state is a position in the menu state machine.
type state int

const (
	stateMenu state = iota
	stateAddTask
	stateViewTasks
	stateMarkCompleted
	stateExit
)

func (s state) String() string {
	switch s {
	case stateMenu:
		return "menu"
	case stateAddTask:
		return "add_task"
	case stateViewTasks:
		return "view_tasks"
	case stateMarkCompleted:
		return "mark_completed"
	case stateExit:
		return "exit"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Fixed user-facing text.
const (
	menuText = "Task Manager Menu:\n" +
		"------------------\n" +
		"1. Add Task\n" +
		"2. View Tasks\n" +
		"3. Mark Task as Completed\n" +
		"4. Exit\n"
	detailsHeader = "\nTask Details:\n-------------\n"

	promptChoice      = "Enter your choice (1-4): "
	promptTitle       = "Enter task title: "
	promptDescription = "Enter task description: "
	promptDueDate     = "Enter due date (YYYY-MM-DD): "
	promptMarkTitle   = "Enter the title of the task to mark as completed: "

	msgAdded     = "Task added successfully!"
	msgCompleted = "Task marked as completed!"
	msgFarewell  = "Exiting Task Manager. Goodbye!"
)

// menuChoices maps the accepted menu inputs to their states.
var menuChoices = map[string]state{
	"1": stateAddTask,
	"2": stateViewTasks,
	"3": stateMarkCompleted,
	"4": stateExit,
}

// Session owns a task store for the duration of one interactive run.
type Session struct {
	store  *store.Store
	in     *bufio.Reader
	out    io.Writer
	logger *log.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the diagnostic logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns a session reading user input from in and writing prompts and
// results to out. The store should already be loaded.
func New(st *store.Store, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		store:  st,
		in:     bufio.NewReader(in),
		out:    out,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run drives the menu loop until the user exits or input ends. It returns
// nil on a normal exit. A failed final persist is returned as an error,
// as is a read failure other than end of input. Cancelling ctx stops the
// loop before the next state runs.
func (s *Session) Run(ctx context.Context) error {
	current := stateMenu
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if current == stateExit {
			return s.exit()
		}

		var (
			next state
			err  error
		)
		switch current {
		case stateMenu:
			next, err = s.menu()
		case stateAddTask:
			next, err = s.addTask()
		case stateViewTasks:
			next, err = s.viewTasks()
		case stateMarkCompleted:
			next, err = s.markCompleted()
		default:
			return fmt.Errorf("unknown session state %v", current)
		}
		if err != nil {
			return err
		}
		s.logger.Debug("session transition", "from", current, "to", next)
		current = next
	}
}

func (s *Session) menu() (state, error) {
	s.print(menuText)
	input, err := s.readLine(promptChoice)
	if err != nil {
		return s.endOfInput(err)
	}
	next, err := parseChoice(input)
	if err != nil {
		s.reportError(err)
		return stateMenu, nil
	}
	return next, nil
}

// parseChoice maps a menu input to its state. Only the exact strings "1"
// through "4" are accepted.
func parseChoice(input string) (state, error) {
	next, ok := menuChoices[input]
	if !ok {
		return stateMenu, fmt.Errorf("%w: %q", types.ErrInvalidChoice, input)
	}
	return next, nil
}

func (s *Session) addTask() (state, error) {
	s.print(detailsHeader)

	fields := []struct {
		prompt string
		check  func(string) error
	}{
		{promptTitle, types.ValidateTitle},
		{promptDescription, types.ValidateDescription},
		{promptDueDate, types.ValidateDueDate},
	}
	values := make([]string, len(fields))
	for i, f := range fields {
		input, err := s.readLine(f.prompt)
		if err != nil {
			return s.endOfInput(err)
		}
		if err := f.check(input); err != nil {
			s.reportError(err)
			return stateMenu, nil
		}
		values[i] = input
	}

	task := types.NewTask(values[0], values[1], values[2])
	if err := s.store.Add(task); err != nil {
		s.logger.Error("add task failed", "err", err)
		s.reportError(err)
		return stateMenu, nil
	}
	s.printMessage(msgAdded)
	return stateMenu, nil
}

func (s *Session) viewTasks() (state, error) {
	if err := s.store.ListAll(s.out); err != nil {
		return stateMenu, fmt.Errorf("writing task list: %w", err)
	}
	return stateMenu, nil
}

func (s *Session) markCompleted() (state, error) {
	if err := s.store.ListAll(s.out); err != nil {
		return stateMenu, fmt.Errorf("writing task list: %w", err)
	}
	title, err := s.readLine(promptMarkTitle)
	if err != nil {
		return s.endOfInput(err)
	}
	if err := s.store.MarkCompleted(title); err != nil {
		if !errors.Is(err, types.ErrTaskNotFound) {
			s.logger.Error("mark completed failed", "err", err)
		}
		s.reportError(err)
		return stateMenu, nil
	}
	s.printMessage(msgCompleted)
	return stateMenu, nil
}

func (s *Session) exit() error {
	if err := s.store.Persist(); err != nil {
		return fmt.Errorf("saving tasks on exit: %w", err)
	}
	s.print(msgFarewell + "\n")
	return nil
}

// readLine prints prompt and returns the next input line without its line
// terminator. A final line without a newline is returned as is; io.EOF is
// returned only when no input remains.
func (s *Session) readLine(prompt string) (string, error) {
	s.print(prompt)
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// endOfInput turns a read failure into a state transition. Running out of
// input exits the same way choosing "4" does.
func (s *Session) endOfInput(err error) (state, error) {
	if errors.Is(err, io.EOF) {
		s.print("\n")
		return stateExit, nil
	}
	return stateExit, fmt.Errorf("reading input: %w", err)
}

func (s *Session) print(text string) {
	fmt.Fprint(s.out, text)
}

// printMessage writes a result line followed by a blank line.
func (s *Session) printMessage(msg string) {
	fmt.Fprintf(s.out, "%s\n\n", msg)
}

func (s *Session) reportError(err error) {
	s.logger.Debug("input rejected", "err", err)
	s.printMessage("ERROR: " + userMessage(err))
}

// userMessage returns the fixed text shown for a known error kind.
func userMessage(err error) string {
	switch {
	case errors.Is(err, types.ErrEmptyTitle):
		return "Task title cannot be empty."
	case errors.Is(err, types.ErrEmptyDescription):
		return "Task description cannot be empty."
	case errors.Is(err, types.ErrInvalidDate):
		return "Invalid date format. Please type in YYYY-MM-DD format."
	case errors.Is(err, types.ErrTaskNotFound):
		return "Task not found. Please enter a valid task title."
	case errors.Is(err, types.ErrInvalidChoice):
		return "Invalid choice. Please enter a number between 1 and 4."
	default:
		return err.Error()
	}
}
