// Package store keeps the task list and its backing file in step.
// This file provides the reader for the historical space-separated task file.
package store

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mesh-intelligence/taskman/pkg/types"
)

// legacyFieldCount is the number of space-separated fields per legacy line:
// title, description, due date, completed.
const legacyFieldCount = 4

// readLegacy decodes a legacy task file. Spaces in titles and descriptions
// were stored as underscores, so every underscore comes back as a space.
// Blank lines are skipped; any other line without exactly four fields fails
// the whole read.
func readLegacy(path string) ([]*types.Task, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioError("read", path, err)
	}
	defer f.Close()

	lines, err := readLines(f)
	if err != nil {
		return nil, ioError("scan", path, err)
	}
	tasks := make([]*types.Task, 0, len(lines))
	for _, line := range lines {
		task, err := decodeLegacyLine(strings.TrimSpace(string(line.data)))
		if err != nil {
			return nil, &DecodeError{Path: path, Line: line.num, Err: err}
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func decodeLegacyLine(line string) (*types.Task, error) {
	fields := strings.Split(line, " ")
	if len(fields) != legacyFieldCount {
		return nil, fmt.Errorf("expected %d space-separated fields, got %d", legacyFieldCount, len(fields))
	}
	if fields[2] == "" {
		return nil, errors.New("empty due date")
	}
	task := types.NewTask(
		strings.ReplaceAll(fields[0], "_", " "),
		strings.ReplaceAll(fields[1], "_", " "),
		fields[2],
	)
	task.Completed = fields[3] == "True"
	return task, nil
}

// Import appends every task from a legacy file in file order and persists
// once. On any failure the store is left unchanged. It returns the number
// of tasks imported.
func (s *Store) Import(path string) (int, error) {
	tasks, err := readLegacy(path)
	if err != nil {
		return 0, err
	}
	if len(tasks) == 0 {
		return 0, nil
	}

	before := len(s.tasks)
	s.tasks = append(s.tasks, tasks...)
	if err := s.Persist(); err != nil {
		s.tasks = s.tasks[:before]
		return 0, err
	}
	s.logger.Info("imported legacy tasks", "path", path, "count", len(tasks))
	return len(tasks), nil
}
