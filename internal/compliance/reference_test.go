// SPDX-License-Identifier: Apache-2.0

package compliance_test

import (
	"testing"

	"github.com/dudhatpatel/cyberdefender/internal/compliance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaws(t *testing.T) {
	laws := compliance.Laws()

	require.Len(t, laws, 4)

	ids := make(map[string]bool, len(laws))
	for _, law := range laws {
		assert.NotEmpty(t, law.ID)
		assert.NotEmpty(t, law.Name)
		assert.NotEmpty(t, law.Description)
		assert.False(t, ids[law.ID], "duplicate law id %q", law.ID)
		ids[law.ID] = true
	}

	assert.True(t, ids["it-act-2000"])
	assert.True(t, ids["dpdp-2023"])
}

func TestLaws_ReturnsCopy(t *testing.T) {
	first := compliance.Laws()
	first[0].Name = "mutated"

	assert.NotEqual(t, "mutated", compliance.Laws()[0].Name)
}

func TestFrauds(t *testing.T) {
	frauds := compliance.Frauds()

	require.Len(t, frauds, 6)
	for _, fraud := range frauds {
		assert.NotEmpty(t, fraud.Type)
		assert.NotEmpty(t, fraud.Description)
		assert.NotEmpty(t, fraud.WarningSign)
		assert.NotEmpty(t, fraud.Prevention)
	}
}
