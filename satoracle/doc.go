// Package satoracle defines the Boolean-satisfiability contract the
// solver package encodes corona queries against, plus a reference
// in-process backend (dpll.go). No third-party SAT solver appears
// anywhere in the example pack this module was built from; a real
// dependency could not be grounded here (see DESIGN.md), so the
// reference backend is a small incremental DPLL solver with unit
// propagation, kept intentionally simple and swappable behind Oracle.
package satoracle
