package groupsync

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMembership(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{name: "empty", raw: "", expected: []string{}},
		{name: "blank", raw: "   ", expected: []string{}},
		{name: "json array", raw: `["SG_A","SG_B"]`, expected: []string{"SG_A", "SG_B"}},
		{name: "json array with non-strings", raw: `["SG_A", 7, null]`, expected: []string{"SG_A"}},
		{name: "json string scalar", raw: `"SG_A"`, expected: []string{"SG_A"}},
		{name: "json number scalar", raw: `42`, expected: []string{}},
		{name: "bare token", raw: "SG_C", expected: []string{"SG_C"}},
		{name: "comma list with spaces", raw: " SG_A , SG_B,,SG_C ", expected: []string{"SG_A", "SG_B", "SG_C"}},
		{name: "malformed json falls back to split", raw: `["SG_A",`, expected: []string{`["SG_A"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseMembership(tt.raw))
		})
	}
}

func TestMembershipSource(t *testing.T) {
	tests := []struct {
		name           string
		attributes     map[string]string
		clientMetadata map[string]string
		expected       string
	}{
		{name: "nothing", expected: ""},
		{
			name:       "custom attribute wins",
			attributes: map[string]string{"custom:isMemberOf": "A", "isMemberOf": "B"},
			expected:   "A",
		},
		{
			name:           "direct attribute before client metadata",
			attributes:     map[string]string{"custom:isMemberOf": "", "isMemberOf": "B"},
			clientMetadata: map[string]string{"isMemberOf": "C"},
			expected:       "B",
		},
		{
			name:           "client metadata last",
			attributes:     map[string]string{"sub": "abc"},
			clientMetadata: map[string]string{"isMemberOf": "C"},
			expected:       "C",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, membershipSource(tt.attributes, tt.clientMetadata))
		})
	}
}

func TestIsMember(t *testing.T) {
	assert.True(t, isMember([]string{"SG_A", "SG_B"}, "SG_A"))
	assert.False(t, isMember([]string{"sg_a"}, "SG_A"))
	assert.False(t, isMember([]string{}, "SG_A"))
}
