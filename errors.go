package tabview

import "errors"

// ErrEmptyPaneSet is returned by New when constructed with no pane names.
// An empty pane set is a configuration error and fails loudly; every other
// failure mode in the engine degrades gracefully.
var ErrEmptyPaneSet = errors.New("tabview: empty pane set")

// ErrUnknownTab is returned by New when the configured initial tab does not
// name any pane in the set.
var ErrUnknownTab = errors.New("tabview: unknown tab name")

// DuplicatePaneError reports a pane name that appears more than once in the
// declared set. Pane identity is the name, so duplicates are rejected at
// construction.
type DuplicatePaneError struct {
	Name string
}

func (e *DuplicatePaneError) Error() string {
	return "tabview: duplicate pane name " + e.Name
}
