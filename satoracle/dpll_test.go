package satoracle_test

import (
	"context"
	"errors"
	"testing"

	"github.com/heeschnum/heesch/satoracle"
)

func TestSatisfiableSimpleClause(t *testing.T) {
	d := satoracle.NewDPLL()
	vars := d.NewVars(2)
	a, b := vars[0], vars[1]

	d.AddClause([]satoracle.Lit{satoracle.Pos(a), satoracle.Pos(b)})
	d.AddClause([]satoracle.Lit{satoracle.Neg(a)})

	status, err := d.Solve(context.Background())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if status != satoracle.SAT {
		t.Fatalf("status = %v; want SAT", status)
	}

	model, err := d.GetModel()
	if err != nil {
		t.Fatalf("GetModel: %v", err)
	}
	if model[a] != satoracle.False {
		t.Errorf("a = %v; want False (forced by unit clause)", model[a])
	}
	if model[b] != satoracle.True {
		t.Errorf("b = %v; want True (forced by a=false clause)", model[b])
	}
}

func TestUnsatisfiableContradiction(t *testing.T) {
	d := satoracle.NewDPLL()
	vars := d.NewVars(1)
	a := vars[0]

	d.AddClause([]satoracle.Lit{satoracle.Pos(a)})
	d.AddClause([]satoracle.Lit{satoracle.Neg(a)})

	status, err := d.Solve(context.Background())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if status != satoracle.UNSAT {
		t.Fatalf("status = %v; want UNSAT", status)
	}

	_, err = d.GetModel()
	if !errors.Is(err, satoracle.ErrNoModel) {
		t.Errorf("GetModel error = %v; want ErrNoModel", err)
	}
}

func TestIncrementalClauseAdditionNarrowsModel(t *testing.T) {
	d := satoracle.NewDPLL()
	vars := d.NewVars(1)
	a := vars[0]

	status, err := d.Solve(context.Background())
	if err != nil || status != satoracle.SAT {
		t.Fatalf("Solve (no clauses) = %v, %v; want SAT, nil", status, err)
	}

	d.AddClause([]satoracle.Lit{satoracle.Neg(a)})
	status, err = d.Solve(context.Background())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if status != satoracle.SAT {
		t.Fatalf("status = %v; want SAT", status)
	}
	model, _ := d.GetModel()
	if model[a] != satoracle.False {
		t.Errorf("a = %v; want False", model[a])
	}
}

func TestSolveRespectsCanceledContext(t *testing.T) {
	d := satoracle.NewDPLL()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.Solve(ctx)
	if err == nil {
		t.Error("expected Solve to report a context error when canceled")
	}
}
