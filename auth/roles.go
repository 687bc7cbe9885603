package auth

import (
	"github.com/SaiNageswarS/go-collection-boot/ds"
)

type Role string

const (
	RoleAdmin            Role = "admin"
	RoleWorkspaceManager Role = "workspace_manager"
	RoleUser             Role = "user"
	RoleChatbotUser      Role = "chatbot_user"
)

var privilegedRoles = []Role{RoleAdmin, RoleWorkspaceManager, RoleChatbotUser}

// IsPrivileged reports whether the role set intersects the roles allowed to
// see unredacted session metadata.
func IsPrivileged(roles []string) bool {
	roleSet := ds.NewSet[string]()
	for _, r := range roles {
		roleSet.Add(r)
	}

	for _, r := range privilegedRoles {
		if roleSet.Contains(string(r)) {
			return true
		}
	}
	return false
}
