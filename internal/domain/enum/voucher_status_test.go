package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoucherStatusTransitions(t *testing.T) {
	assert.True(t, VoucherStatusDraft.CanTransitionTo(VoucherStatusApproved))
	assert.True(t, VoucherStatusDraft.CanTransitionTo(VoucherStatusCancelled))
	assert.False(t, VoucherStatusDraft.CanTransitionTo(VoucherStatusPaid))

	assert.True(t, VoucherStatusApproved.CanTransitionTo(VoucherStatusPaid))
	assert.True(t, VoucherStatusApproved.CanTransitionTo(VoucherStatusCancelled))
	assert.False(t, VoucherStatusApproved.CanTransitionTo(VoucherStatusDraft))

	// Terminal states allow nothing
	for _, terminal := range []VoucherStatus{VoucherStatusPaid, VoucherStatusCancelled} {
		assert.True(t, terminal.IsTerminal())
		for _, next := range []VoucherStatus{VoucherStatusDraft, VoucherStatusApproved, VoucherStatusPaid, VoucherStatusCancelled} {
			assert.False(t, terminal.CanTransitionTo(next))
		}
	}
}

func TestVoucherStatusJSON(t *testing.T) {
	data, err := json.Marshal(VoucherStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, `"approved"`, string(data))

	var s VoucherStatus
	require.NoError(t, json.Unmarshal([]byte(`"paid"`), &s))
	assert.Equal(t, VoucherStatusPaid, s)

	// Numeric form is accepted too
	require.NoError(t, json.Unmarshal([]byte(`3`), &s))
	assert.Equal(t, VoucherStatusCancelled, s)
}

func TestVoucherStatusString(t *testing.T) {
	assert.Equal(t, "draft", VoucherStatusDraft.String())
	assert.Equal(t, "cancelled", VoucherStatusCancelled.String())

	// Out-of-range values from a bad column read must not panic
	assert.Equal(t, "unknown", VoucherStatus(7).String())
	assert.Equal(t, "unknown", VoucherStatus(-1).String())

	var s VoucherStatus
	require.NoError(t, s.Scan(int64(99)))
	assert.Equal(t, "unknown", s.String())
}

func TestParseVoucherStatus(t *testing.T) {
	s, ok := ParseVoucherStatus("draft")
	assert.True(t, ok)
	assert.Equal(t, VoucherStatusDraft, s)

	_, ok = ParseVoucherStatus("unknown")
	assert.False(t, ok)
}
