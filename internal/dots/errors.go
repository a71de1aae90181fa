package dots

import "errors"

var (
	// ErrInvalidCoord indicates a coordinate outside [0, N).
	ErrInvalidCoord = errors.New("dots: coordinate out of range")
	// ErrIllegalTransition indicates a pointer event the current phase does not accept.
	ErrIllegalTransition = errors.New("dots: illegal transition")
	// ErrEmptyCommit indicates a commit of a path shorter than two dots.
	ErrEmptyCommit = errors.New("dots: path too short to commit")
	// ErrInvalidSettings indicates settings outside their allowed ranges.
	ErrInvalidSettings = errors.New("dots: invalid settings")
	// ErrBoardSize indicates a color slice whose length is not N*N.
	ErrBoardSize = errors.New("dots: board size mismatch")
)
