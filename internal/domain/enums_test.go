package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDepartmentRank_FollowsFlowOrder(t *testing.T) {
	for i, d := range FlowOrder {
		assert.Equal(t, i, d.Rank(), "rank of %s", d)
	}
	assert.Equal(t, len(FlowOrder), Department("detail").Rank(), "unknown departments sort last")
}

func TestEmptySnapshot_NonNilSlices(t *testing.T) {
	s := EmptySnapshot()
	assert.NotNil(t, s.Registry)
	assert.NotNil(t, s.Scheduled)
	assert.NotNil(t, s.Actual)
	assert.Empty(t, s.Registry)
}
