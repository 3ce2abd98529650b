package apperr

import "errors"

// Domain outcomes that controllers translate into HTTP statuses. Wrap them
// with fmt.Errorf("...: %w", ...) so errors.Is keeps working through layers.
var (
	ErrNotFound        = errors.New("not found")
	ErrDuplicateName   = errors.New("group name already exists")
	ErrDuplicateMember = errors.New("item already in group")
	ErrNoGroups        = errors.New("no groups found")
	ErrSourceRead      = errors.New("catalog source read failed")
)
