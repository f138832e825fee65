package chord

import "errors"

var (
	ErrNotFound          = errors.New("chord: unknown template name")
	ErrEmptyName         = errors.New("chord: template name must not be empty")
	ErrDuplicateName     = errors.New("chord: duplicate template name")
	ErrNoIntervals       = errors.New("chord: template has no intervals")
	ErrNegativeInterval  = errors.New("chord: intervals must be non-negative")
	ErrUnsortedIntervals = errors.New("chord: intervals must be sorted ascending")
	ErrDuplicateInterval = errors.New("chord: duplicate interval")
	ErrMissingRoot       = errors.New("chord: intervals must contain the root interval 0")
)
