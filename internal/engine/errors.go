package engine

import "errors"

// Rule violations are local, recoverable rejections: the state is left
// unchanged and the caller re-presents options from the published view.
var (
	ErrOutOfTurn            = errors.New("out of turn")
	ErrInvalidBidAmount     = errors.New("invalid bid amount")
	ErrPhaseMismatch        = errors.New("phase mismatch")
	ErrInvalidCardSelection = errors.New("invalid card selection")
	ErrFollowSuitViolation  = errors.New("follow suit violation")
	ErrDuplicateAction      = errors.New("duplicate action")
)
