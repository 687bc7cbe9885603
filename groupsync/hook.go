package groupsync

import (
	"context"
	"errors"
	"fmt"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
)

const confirmedStatus = "CONFIRMED"

// PostConfirmationEvent is the identity provider trigger payload. The
// library response type is empty, so Response is kept loose to carry
// finalUserStatus and anything else the trigger sends back.
type PostConfirmationEvent struct {
	events.CognitoEventUserPoolsHeader
	Request  events.CognitoEventUserPoolsPostConfirmationRequest `json:"request"`
	Response map[string]any                                       `json:"response"`
}

// Outcome records what the hook decided. Err is informational only; it never
// reaches the identity provider.
type Outcome struct {
	Approved bool
	Added    bool
	Err      error
}

type Hook struct {
	directory       Directory
	securityGroupId string
	groupName       string
}

func NewHook(directory Directory, securityGroupId, groupName string) *Hook {
	return &Hook{
		directory:       directory,
		securityGroupId: securityGroupId,
		groupName:       groupName,
	}
}

// Handle is the trigger entry point. It always confirms the user.
func (h *Hook) Handle(ctx context.Context, event *PostConfirmationEvent) (*PostConfirmationEvent, error) {
	confirmed, _ := h.Process(ctx, event)
	return confirmed, nil
}

// Process runs the group assignment and returns the confirmed event together
// with what was decided.
func (h *Hook) Process(ctx context.Context, event *PostConfirmationEvent) (*PostConfirmationEvent, Outcome) {
	if event == nil {
		event = &PostConfirmationEvent{}
	}

	outcome := h.Run(ctx, event)
	if outcome.Err != nil {
		logger.Error("Group assignment failed, confirming user anyway",
			zap.String("userName", event.UserName),
			zap.Error(outcome.Err))
	}

	if event.Response == nil {
		event.Response = map[string]any{}
	}
	event.Response["finalUserStatus"] = confirmedStatus
	return event, outcome
}

// Run decides membership and performs at most one directory call. Panics are
// converted into Outcome.Err.
func (h *Hook) Run(ctx context.Context, event *PostConfirmationEvent) (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome.Err = fmt.Errorf("group assignment panicked: %v", r)
		}
	}()

	attributes := event.Request.UserAttributes
	if len(attributes) == 0 {
		logger.Info("No user attributes on event, skipping group assignment")
		return outcome
	}

	groups := ParseMembership(membershipSource(attributes, event.Request.ClientMetadata))
	outcome.Approved = isMember(groups, h.securityGroupId)
	if !outcome.Approved {
		logger.Info("User is not a member of the security group",
			zap.String("securityGroup", h.securityGroupId),
			zap.Strings("groups", groups))
		return outcome
	}

	// Federated users are keyed by the IdP subject.
	username := attributes["sub"]
	err := h.directory.AddUserToGroup(ctx, username, h.groupName, event.UserPoolID)
	switch {
	case err == nil:
		outcome.Added = true
		logger.Info("Added user to group", zap.String("username", username), zap.String("group", h.groupName))
	case errors.Is(err, ErrGroupNotFound):
		logger.Error("Group does not exist, ignoring", zap.String("group", h.groupName), zap.Error(err))
	default:
		outcome.Err = err
	}
	return outcome
}
