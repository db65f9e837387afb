package solver

import "errors"

// ErrLevelCapReached indicates a driver loop around IncreaseLevel hit
// its configured ceiling without reaching UNSAT;
// the Heesch number is reported as inconclusive rather than guessed.
var ErrLevelCapReached = errors.New("solver: level cap reached without a definitive answer")
