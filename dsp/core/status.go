package core

import "errors"

// ErrInvalidParam is the error form of [StatusInvalidParam].
var ErrInvalidParam = errors.New("core: invalid parameter")

// Status reports the outcome of feeding one sample into a streaming filter.
type Status int

const (
	// StatusOK means the sample was accepted and the output is a filtered value.
	StatusOK Status = 0
	// StatusNotFinished means the sample was accepted but only seeded the
	// filter; there was no previous output to blend it with.
	StatusNotFinished Status = -1
	// StatusInvalidParam means the call was rejected and no state changed.
	StatusInvalidParam Status = -2
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotFinished:
		return "not_finished"
	case StatusInvalidParam:
		return "invalid_param"
	default:
		return "unknown"
	}
}

// Accepted reports whether the filter took the sample.
func (s Status) Accepted() bool {
	return s == StatusOK || s == StatusNotFinished
}

// Err returns [ErrInvalidParam] for rejected calls and nil otherwise.
func (s Status) Err() error {
	if s == StatusInvalidParam {
		return ErrInvalidParam
	}
	return nil
}
