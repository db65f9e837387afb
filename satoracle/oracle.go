package satoracle

import (
	"context"
	"errors"
)

// ErrNoModel indicates GetModel was called without a prior SAT solve.
var ErrNoModel = errors.New("satoracle: no model available")

// VarID identifies a Boolean variable. Variables are allocated
// sequentially starting at 1; 0 is never a valid VarID.
type VarID int

// Lit is a literal: a variable, optionally negated.
type Lit struct {
	Var     VarID
	Negated bool
}

// Pos returns the positive literal for v.
func Pos(v VarID) Lit { return Lit{Var: v} }

// Neg returns the negated literal for v.
func Neg(v VarID) Lit { return Lit{Var: v, Negated: true} }

// Status is the outcome of a Solve call.
type Status int

const (
	// Unknown means Solve could not determine satisfiability, e.g. it
	// exceeded a time budget.
	Unknown Status = iota
	SAT
	UNSAT
)

// TriState is a variable's value in a model.
type TriState int

const (
	Undef TriState = iota
	True
	False
)

// Oracle is the Boolean-satisfiability interface the solver package
// encodes corona queries against. It is incremental: clauses added
// after a Solve remain in force for the next Solve, and variables
// allocated by NewVars persist for the oracle's lifetime.
type Oracle interface {
	// NewVars allocates n fresh variables and returns their ids.
	NewVars(n int) []VarID
	// AddClause adds a disjunction of literals as a hard constraint.
	AddClause(lits []Lit)
	// Solve determines satisfiability of the current clause set,
	// respecting ctx for cancellation/timeout. An undetermined result
	// is reported as Unknown, never as UNSAT; the DPLL backend returns
	// Unknown together with ctx's error when ctx is done.
	Solve(ctx context.Context) (Status, error)
	// GetModel returns the last Solve's satisfying assignment, one
	// entry per allocated variable. Returns ErrNoModel if the last
	// Solve did not return SAT.
	GetModel() (map[VarID]TriState, error)
}
