package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffersLevel(t *testing.T) {
	u := University{DegreeLevels: []string{DegreeBachelor, DegreeMaster}}

	assert.True(t, u.OffersLevel(DegreeBachelor))
	assert.False(t, u.OffersLevel(DegreePhD))
	// exact match, no case folding
	assert.False(t, u.OffersLevel("bachelor"))
}

func TestHasStrongMajor(t *testing.T) {
	u := University{
		Majors:       []string{"Computer Science", "History"},
		StrongMajors: []string{"Computer Science"},
	}

	assert.True(t, u.HasStrongMajor("Computer Science"))
	// offered but not strong
	assert.False(t, u.HasStrongMajor("History"))
}

func TestChatMessageRoles(t *testing.T) {
	assert.True(t, (&ChatMessage{Role: MessageRoleUser}).IsValidRole())
	assert.True(t, (&ChatMessage{Role: MessageRoleAssistant}).IsValidRole())
	assert.False(t, (&ChatMessage{Role: MessageRoleSystem}).IsValidRole())
	assert.False(t, (&ChatMessage{Role: "moderator"}).IsValidRole())
}

func TestUniversityWireFieldNames(t *testing.T) {
	data, err := json.Marshal(University{Slug: "mit", TuitionAnnualUSD: 57590})
	require.NoError(t, err)

	var wire map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &wire))

	// clients depend on the camelCase names
	assert.Contains(t, wire, "tuitionAnnualUSD")
	assert.Contains(t, wire, "countryFull")
	assert.Contains(t, wire, "internationalStudentsPercent")
	assert.Contains(t, wire, "admissionRequirements")
	assert.NotContains(t, wire, "TuitionAnnualUSD")
}
