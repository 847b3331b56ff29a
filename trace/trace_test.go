package trace

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderAssignsSequentialStepNumbers(t *testing.T) {
	var rec Recorder
	rec.Record(Step{Title: "Key Derivation"})
	rec.Record(Step{Title: "Key Expansion"})
	rec.Record(Step{Title: "Base64 Encoding"})

	steps := rec.Steps()
	require.Len(t, steps, 3)
	for i, step := range steps {
		assert.Equal(t, i+1, step.StepNumber)
	}
	assert.Equal(t, "Key Expansion", steps[1].Title)
}

func TestRecorderZeroValueUsable(t *testing.T) {
	var rec Recorder
	assert.Empty(t, rec.Steps())

	rec.Record(Step{Title: "first"})
	require.Len(t, rec.Steps(), 1)
	assert.Equal(t, 1, rec.Steps()[0].StepNumber)
}

func TestRecordFailure(t *testing.T) {
	var rec Recorder
	rec.Record(Step{Title: "Base64 Decoding"})
	rec.RecordFailure("Error", errors.New("illegal base64 data"))

	steps := rec.Steps()
	require.Len(t, steps, 2)
	last := steps[1]
	assert.True(t, last.Failed)
	assert.Equal(t, 2, last.StepNumber)
	assert.Contains(t, last.Details, "illegal base64")
}

func TestSnapshotIsACopy(t *testing.T) {
	state := [4][4]byte{{1, 2, 3, 4}}

	m := Snapshot(state)
	p := SnapshotPtr(state)
	state[0][0] = 0xFF

	assert.EqualValues(t, 1, m[0][0], "Snapshot must not alias the source state")
	assert.EqualValues(t, 1, p[0][0], "SnapshotPtr must not alias the source state")
}
