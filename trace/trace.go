// Package trace defines the structured records the cipher engine emits for
// every logical step it performs, and the Recorder that collects them.
//
// Records are the sole contract between the engine and any presentation
// layer: each carries enough state (operation name, description, before and
// after matrices where applicable) to be replayed by a consumer without
// re-deriving it. Records are write-once - they are produced during a
// single encrypt or decrypt call and owned by the caller after return; the
// engine keeps no history.
package trace

// Matrix is a 4x4 byte snapshot of a cipher state or round key.
type Matrix [4][4]byte

// BlockOp describes one atomic transform applied to a block's state during
// a single round.
type BlockOp struct {
	// Round is the round number the operation belongs to; -1 marks the
	// initial block-to-state conversion, which precedes round 0.
	Round int

	// Operation is the transform name, e.g. "SubBytes" or "AddRoundKey".
	Operation string

	// Description is a short human-readable account of the operation.
	Description string

	// Before is the state prior to the operation. It is unset for the
	// initial conversion, which has no matrix-shaped input.
	Before *Matrix

	// After is the state the operation produced.
	After Matrix

	// RoundKey carries the injected key matrix for key-injection
	// operations, nil otherwise.
	RoundKey *Matrix

	// Details is free-form supplementary text.
	Details string
}

// Step describes one logical stage of an encrypt or decrypt call: key
// derivation, padding, one full block, or the final output encoding.
type Step struct {
	// StepNumber orders steps within a single call, starting at 1.
	StepNumber int

	// Title names the stage, e.g. "Key Expansion" or "Encrypt Block 1/2".
	Title string

	// Description is a one-line account of what the stage did.
	Description string

	// Details is free-form supplementary text.
	Details string

	// BlockOps holds the ordered atomic transforms for block stages,
	// empty for all others.
	BlockOps []BlockOp

	// Output carries the textual result for terminal stages (the base64
	// ciphertext or recovered plaintext), empty otherwise.
	Output string

	// Failed marks the diagnostic step recorded when a call aborts.
	Failed bool
}

// Recorder accumulates the steps of one encrypt or decrypt call. The zero
// value is ready to use. Recorder owns all snapshots it stores; the
// transforms themselves are never special-cased for tracing.
type Recorder struct {
	steps []Step
}

// Record appends a step, assigning it the next step number.
func (r *Recorder) Record(step Step) {
	step.StepNumber = len(r.steps) + 1
	r.steps = append(r.steps, step)
}

// RecordFailure appends a terminal diagnostic step describing why the call
// aborted.
func (r *Recorder) RecordFailure(title string, err error) {
	r.Record(Step{
		Title:       title,
		Description: "Operation failed",
		Details:     err.Error(),
		Failed:      true,
	})
}

// Steps returns the recorded steps in order. The returned slice is owned by
// the caller once the engine call has returned.
func (r *Recorder) Steps() []Step {
	return r.steps
}

// Snapshot copies a 4x4 state into a Matrix the Recorder owns.
func Snapshot(state [4][4]byte) Matrix {
	return Matrix(state)
}

// SnapshotPtr copies a 4x4 state and returns a pointer to the copy, for the
// optional Before and RoundKey fields.
func SnapshotPtr(state [4][4]byte) *Matrix {
	m := Matrix(state)
	return &m
}
