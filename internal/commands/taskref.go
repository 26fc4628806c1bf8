package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"taskmgr/internal/service"
)

// TaskRef represents a parsed task reference.
type TaskRef struct {
	Num int    // 1-based position in the dashboard listing, 0 if ID is set
	ID  string // server task id
}

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ParseTaskRef parses a task reference from args.
//
// Parsing rules:
// 1. No args → error: task reference required
// 2. First arg all digits → position in the dashboard listing
// 3. Otherwise → task id (must not contain whitespace or '/')
// 4. More than one arg → error: unexpected argument: <arg>
func ParseTaskRef(args []string) (TaskRef, error) {
	if len(args) == 0 {
		return TaskRef{}, ErrTaskRefRequired
	}
	if len(args) > 1 {
		return TaskRef{}, fmt.Errorf("unexpected argument: %s", args[1])
	}

	ref := strings.TrimSpace(args[0])
	if ref == "" {
		return TaskRef{}, ErrTaskRefRequired
	}

	if isAllDigits(ref) {
		num, err := strconv.Atoi(ref)
		if err != nil || num < 1 {
			return TaskRef{}, fmt.Errorf("invalid task reference: %s", ref)
		}
		return TaskRef{Num: num}, nil
	}

	if strings.ContainsAny(ref, "/ \t") {
		return TaskRef{}, fmt.Errorf("invalid task reference: %s", ref)
	}
	return TaskRef{ID: ref}, nil
}

// Resolve finds the referenced task in a fetched listing.
func (r TaskRef) Resolve(tasks []service.Task) (service.Task, error) {
	if r.ID == "" {
		if r.Num < 1 || r.Num > len(tasks) {
			return service.Task{}, fmt.Errorf("task number out of range: %d", r.Num)
		}
		return tasks[r.Num-1], nil
	}
	for _, t := range tasks {
		if t.ID == r.ID {
			return t, nil
		}
	}
	return service.Task{}, fmt.Errorf("task not found: %s", r.ID)
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
