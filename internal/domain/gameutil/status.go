package gameutil

import (
	"math/big"

	"github.com/socialharmony/backend/internal/model"
	"github.com/socialharmony/backend/pkg/enum"
	"github.com/socialharmony/backend/pkg/ethutil"
)

var (
	StatusCancelled = enum.New(model.GameStatus("cancelled"))
	StatusCompleted = enum.New(model.GameStatus("completed"))
	StatusActive    = enum.New(model.GameStatus("active"))
	StatusPending   = enum.New(model.GameStatus("pending"))
)

// ClassifyStatus derives the status of a game. Precedence is cancelled, completed, then pending
// while the game still misses endorsements, otherwise active.
func ClassifyStatus(cancelled, complete, endorsed bool) model.GameStatus {
	switch {
	case cancelled:
		return StatusCancelled
	case complete:
		return StatusCompleted
	case !endorsed:
		return StatusPending
	default:
		return StatusActive
	}
}

// IsEndorsed compares the counters as integers.
func IsEndorsed(current, required *big.Int) bool {
	return ethutil.BigIntEqual(current, required)
}

// IsOpen reports whether a game still accepts endorsements or participants.
func IsOpen(status model.GameStatus) bool {
	return status != StatusCancelled && status != StatusCompleted
}
