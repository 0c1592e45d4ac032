// Package store keeps the ordered in-memory task list and its backing
// JSONL file in step: every mutation is followed by a full atomic rewrite
// of the file.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/charmbracelet/log"

	"github.com/mesh-intelligence/taskman/pkg/types"
)

// ListHeader precedes every task listing.
const ListHeader = "\nCurrent Tasks:\n--------------\n"

// Store is an ordered, non-deduplicated collection of tasks bound to one
// backing file. A Store is not safe for concurrent use.
type Store struct {
	path   string
	tasks  []*types.Task
	logger *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load and persist diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns an empty store bound to path. Nothing is read until Load.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path:   path,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Tasks returns a snapshot of the task list in store order. The slice is a
// copy; the tasks are shared.
func (s *Store) Tasks() []*types.Task {
	out := make([]*types.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Load replaces the store contents with the tasks in the backing file. A
// missing file leaves the store empty and is not an error. Loading is all
// or nothing: on any failure the store is left as it was.
func (s *Store) Load() error {
	lines, err := readJSONL(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("task file not found, starting empty", "path", s.path)
		s.tasks = nil
		return nil
	}
	if err != nil {
		return ioError("read", s.path, err)
	}

	tasks := make([]*types.Task, 0, len(lines))
	for _, line := range lines {
		task, err := decodeTask(line.data)
		if err != nil {
			return &DecodeError{Path: s.path, Line: line.num, Err: err}
		}
		tasks = append(tasks, task)
	}

	s.tasks = tasks
	s.logger.Debug("loaded tasks", "path", s.path, "count", len(tasks))
	return nil
}

// decodeTask parses one JSONL record. The record must be valid JSON and
// satisfy the task schema; field values are not re-validated.
func decodeTask(data []byte) (*types.Task, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := validateRecord(doc); err != nil {
		return nil, err
	}
	var task types.Task
	if err := json.Unmarshal(data, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// Persist rewrites the backing file with the whole store. The write is
// atomic; on failure the previous file contents are kept.
func (s *Store) Persist() error {
	records := make([][]byte, 0, len(s.tasks))
	for _, task := range s.tasks {
		data, err := json.Marshal(task)
		if err != nil {
			return fmt.Errorf("encoding task %q: %w", task.Title, err)
		}
		records = append(records, data)
	}
	if err := writeJSONL(s.path, records); err != nil {
		return ioError("write", s.path, err)
	}
	s.logger.Debug("persisted tasks", "path", s.path, "count", len(records))
	return nil
}

// Add appends task and persists. If the write fails the task is removed
// again so memory and disk stay in agreement.
func (s *Store) Add(task *types.Task) error {
	s.tasks = append(s.tasks, task)
	if err := s.Persist(); err != nil {
		s.tasks = s.tasks[:len(s.tasks)-1]
		return err
	}
	return nil
}

// ListAll writes the listing header followed by every task in store order,
// each separated by a blank line.
func (s *Store) ListAll(w io.Writer) error {
	if _, err := io.WriteString(w, ListHeader); err != nil {
		return err
	}
	for _, task := range s.tasks {
		if _, err := io.WriteString(w, task.String()+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// FindByTitle returns the first task whose title equals title exactly.
// Titles are not unique; later duplicates are never returned.
func (s *Store) FindByTitle(title string) (*types.Task, error) {
	for _, task := range s.tasks {
		if task.Title == title {
			return task, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", types.ErrTaskNotFound, title)
}

// MarkCompleted marks the first task titled title as completed and
// persists. If the write fails the previous completion flag is restored.
func (s *Store) MarkCompleted(title string) error {
	task, err := s.FindByTitle(title)
	if err != nil {
		return err
	}
	was := task.Completed
	task.MarkCompleted()
	if err := s.Persist(); err != nil {
		task.Completed = was
		return err
	}
	return nil
}
