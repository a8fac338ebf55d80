package risk

import "errors"

// Validation failures returned to the immediate caller. None are retried
// internally and none are fatal; match with errors.Is.
var (
	ErrInvalidRiskPercentage  = errors.New("risk percentage must be in (0, 100]")
	ErrZeroStopDistance       = errors.New("stop distance must be positive")
	ErrInvalidStopLoss        = errors.New("invalid stop loss")
	ErrPositionLimitExceeded  = errors.New("open position limit reached")
	ErrDailyLossLimitExceeded = errors.New("daily loss limit reached")
)
