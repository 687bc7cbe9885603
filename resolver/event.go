package resolver

import (
	"encoding/json"
	"strings"

	"github.com/SaiNageswarS/chatbot-api/auth"
	"github.com/aws/aws-lambda-go/events"
)

// Event is the direct Lambda resolver payload.
type Event struct {
	Arguments json.RawMessage `json:"arguments"`
	Identity  *Identity       `json:"identity"`
	Info      Info            `json:"info"`
}

// Identity is the Cognito identity plus the groups list direct Lambda
// resolvers receive next to the claims.
type Identity struct {
	events.AppSyncCognitoIdentity
	Groups []string `json:"groups"`
}

type Info struct {
	FieldName      string `json:"fieldName"`
	ParentTypeName string `json:"parentTypeName"`
}

type idArguments struct {
	Id string `json:"id"`
}

// callerIdentity maps the resolver identity onto auth.Identity. Roles stay nil
// when no group or role claim is present.
func callerIdentity(identity *Identity) auth.Identity {
	if identity == nil {
		return auth.Identity{}
	}

	userId := identity.Sub
	if len(userId) == 0 {
		if sub, ok := identity.Claims["sub"].(string); ok {
			userId = sub
		}
	}

	return auth.Identity{UserId: userId, Roles: callerRoles(identity)}
}

func callerRoles(identity *Identity) []string {
	if identity.Groups != nil {
		return identity.Groups
	}

	for _, claim := range []string{"cognito:groups", "custom:userRole"} {
		value, ok := identity.Claims[claim]
		if !ok || value == nil {
			continue
		}
		return claimValues(value)
	}
	return nil
}

func claimValues(value any) []string {
	switch val := value.(type) {
	case []any:
		roles := make([]string, 0, len(val))
		for _, v := range val {
			if s, ok := v.(string); ok {
				roles = append(roles, s)
			}
		}
		return roles
	case []string:
		return val
	case string:
		return strings.FieldsFunc(val, func(r rune) bool { return r == ',' || r == ' ' })
	default:
		return []string{}
	}
}
