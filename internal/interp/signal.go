package interp

import "github.com/wild-lang/wild/internal/values"

// signalKind tags a flow result with how it left the statement that
// produced it. Threading this through exec in place of exceptions keeps the
// evaluator's hot path (straight-line statement execution) allocation-free,
// per spec.md §9's design note.
type signalKind int

const (
	normal signalKind = iota
	returning
	breaking
	continuing
)

// flow is the result of executing a statement: either Normal completion (no
// payload, besides any expression-statement value which callers don't need)
// or one of the three non-local signals, each carrying what it must to
// reach its handler — Returning carries the function's result value.
type flow struct {
	kind  signalKind
	value values.Value
}

func normalFlow() flow            { return flow{kind: normal} }
func returningFlow(v values.Value) flow { return flow{kind: returning, value: v} }
func breakingFlow() flow          { return flow{kind: breaking} }
func continuingFlow() flow        { return flow{kind: continuing} }

func (f flow) isNormal() bool { return f.kind == normal }
