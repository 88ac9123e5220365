package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkload_Validate(t *testing.T) {
	testCases := []struct {
		name      string
		workload  *Workload
		expectErr error
	}{
		{
			name:     "valid workload",
			workload: NewWorkload("basic").AddProcess(1, 4).AddProcess(2, 2),
		},
		{
			name:      "duplicate pid",
			workload:  NewWorkload("dup").AddProcess(5, 3).AddProcess(5, 1),
			expectErr: ErrDuplicatePID,
		},
		{
			name:      "zero work",
			workload:  NewWorkload("zero").AddProcess(1, 0),
			expectErr: ErrInvalidWork,
		},
		{
			name:      "negative work",
			workload:  NewWorkload("negative").AddProcess(1, -3),
			expectErr: ErrInvalidWork,
		},
		{
			name:      "non-positive pid",
			workload:  NewWorkload("badpid").AddProcess(0, 3),
			expectErr: ErrInvalidPID,
		},
		{
			name:     "empty workload",
			workload: NewWorkload("empty"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.workload.Validate()
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			if len(tc.workload.Processes) == 0 {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestWorkload_TotalWork(t *testing.T) {
	workload := NewWorkload("sum").AddProcess(1, 4).AddProcess(2, 2).AddProcess(3, 7)
	assert.Equal(t, 13, workload.TotalWork())
}
