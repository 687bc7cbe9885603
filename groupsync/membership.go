package groupsync

import (
	"encoding/json"
	"slices"
	"strings"
)

const (
	customMemberOfAttribute = "custom:isMemberOf"
	memberOfAttribute       = "isMemberOf"
	memberOfClientMetadata  = "isMemberOf"
)

// membershipSource picks the first non-empty membership claim.
func membershipSource(userAttributes, clientMetadata map[string]string) string {
	for _, candidate := range []string{
		userAttributes[customMemberOfAttribute],
		userAttributes[memberOfAttribute],
		clientMetadata[memberOfClientMetadata],
	} {
		if len(candidate) > 0 {
			return candidate
		}
	}
	return ""
}

// ParseMembership accepts a JSON array, a JSON string, or a comma separated
// list. Non-string JSON elements never match a group id and are dropped.
func ParseMembership(raw string) []string {
	if len(strings.TrimSpace(raw)) == 0 {
		return []string{}
	}

	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
		switch val := parsed.(type) {
		case []any:
			groups := make([]string, 0, len(val))
			for _, element := range val {
				if group, ok := element.(string); ok {
					groups = append(groups, group)
				}
			}
			return groups
		case string:
			return []string{val}
		default:
			return []string{}
		}
	}

	groups := []string{}
	for _, token := range strings.Split(raw, ",") {
		if token = strings.TrimSpace(token); len(token) > 0 {
			groups = append(groups, token)
		}
	}
	return groups
}

func isMember(groups []string, securityGroupId string) bool {
	return slices.Contains(groups, securityGroupId)
}
