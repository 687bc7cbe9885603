package auth

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Identity is the calling principal. A nil Roles slice means the caller
// carries no role claim at all; an empty one means the claim was present.
type Identity struct {
	UserId string
	Roles  []string
}

type identityKey struct{}

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

func identityFrom(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(Identity)
	return identity, ok
}

// GetUserId returns the caller's user id, or "" when it cannot be resolved.
func GetUserId(ctx context.Context) string {
	identity, ok := identityFrom(ctx)
	if !ok {
		return ""
	}
	return identity.UserId
}

// GetUserRoles returns the caller's roles; nil when no role claim exists.
func GetUserRoles(ctx context.Context) []string {
	identity, ok := identityFrom(ctx)
	if !ok {
		return nil
	}
	return identity.Roles
}

func RequireUserId(ctx context.Context) (string, error) {
	userId := GetUserId(ctx)
	if len(userId) == 0 {
		return "", status.Error(codes.Unauthenticated, "User not found")
	}
	return userId, nil
}

func RequireUserRoles(ctx context.Context) ([]string, error) {
	roles := GetUserRoles(ctx)
	if roles == nil {
		return nil, status.Error(codes.PermissionDenied, "User does not have any roles")
	}
	return roles, nil
}
