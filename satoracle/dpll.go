package satoracle

import "context"

// DPLL is a small reference Oracle backend: recursive backtracking
// search with unit propagation and no learning. It favors simplicity
// and correctness over performance, matching the job of verifying
// the solver package's encoding rather than solving large instances.
type DPLL struct {
	nVars      int
	clauses    [][]Lit
	lastStatus Status
	model      map[VarID]TriState
}

// NewDPLL returns an empty DPLL oracle.
func NewDPLL() *DPLL {
	return &DPLL{lastStatus: Unknown}
}

// NewVars implements Oracle.
func (d *DPLL) NewVars(n int) []VarID {
	ids := make([]VarID, n)
	for i := 0; i < n; i++ {
		d.nVars++
		ids[i] = VarID(d.nVars)
	}
	return ids
}

// AddClause implements Oracle.
func (d *DPLL) AddClause(lits []Lit) {
	cp := make([]Lit, len(lits))
	copy(cp, lits)
	d.clauses = append(d.clauses, cp)
}

// Solve implements Oracle.
func (d *DPLL) Solve(ctx context.Context) (Status, error) {
	assign := make([]TriState, d.nVars+1)
	ok, err := d.search(ctx, assign)
	switch {
	case err != nil:
		d.lastStatus = Unknown
		d.model = nil
		return Unknown, err
	case !ok:
		d.lastStatus = UNSAT
		d.model = nil
		return UNSAT, nil
	default:
		d.lastStatus = SAT
		model := make(map[VarID]TriState, d.nVars)
		for v := 1; v <= d.nVars; v++ {
			model[VarID(v)] = assign[v]
		}
		d.model = model
		return SAT, nil
	}
}

// GetModel implements Oracle.
func (d *DPLL) GetModel() (map[VarID]TriState, error) {
	if d.lastStatus != SAT || d.model == nil {
		return nil, ErrNoModel
	}
	out := make(map[VarID]TriState, len(d.model))
	for k, v := range d.model {
		out[k] = v
	}
	return out, nil
}

func litValue(assign []TriState, l Lit) TriState {
	v := assign[l.Var]
	if v == Undef {
		return Undef
	}
	if l.Negated {
		if v == True {
			return False
		}
		return True
	}
	return v
}

// unitPropagate repeatedly assigns any clause with exactly one
// unassigned literal and no satisfied literal, until a fixpoint or a
// conflicting (fully-false) clause is found.
func (d *DPLL) unitPropagate(assign []TriState) bool {
	for {
		changed := false
		for _, cl := range d.clauses {
			satisfied := false
			unassignedCount := 0
			var unit Lit
			for _, l := range cl {
				switch litValue(assign, l) {
				case True:
					satisfied = true
				case Undef:
					unassignedCount++
					unit = l
				}
				if satisfied {
					break
				}
			}
			if satisfied {
				continue
			}
			if unassignedCount == 0 {
				return false
			}
			if unassignedCount == 1 {
				if unit.Negated {
					assign[unit.Var] = False
				} else {
					assign[unit.Var] = True
				}
				changed = true
			}
		}
		if !changed {
			return true
		}
	}
}

// search performs unit propagation followed by branching on the first
// unassigned variable, trying true then false.
func (d *DPLL) search(ctx context.Context, assign []TriState) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	if !d.unitPropagate(assign) {
		return false, nil
	}

	branchVar := VarID(0)
	for v := 1; v <= d.nVars; v++ {
		if assign[v] == Undef {
			branchVar = VarID(v)
			break
		}
	}
	if branchVar == 0 {
		return true, nil
	}

	for _, val := range [2]TriState{True, False} {
		next := make([]TriState, len(assign))
		copy(next, assign)
		next[branchVar] = val

		ok, err := d.search(ctx, next)
		if err != nil {
			return false, err
		}
		if ok {
			copy(assign, next)
			return true, nil
		}
	}

	return false, nil
}
