package groupsync

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

// ErrGroupNotFound is returned by a Directory when the target group does not exist.
var ErrGroupNotFound = errors.New("group not found")

type Directory interface {
	AddUserToGroup(ctx context.Context, username, groupName, userPoolId string) error
}

type cognitoAPI interface {
	AdminAddUserToGroup(ctx context.Context, params *cognitoidentityprovider.AdminAddUserToGroupInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminAddUserToGroupOutput, error)
}

type CognitoDirectory struct {
	client cognitoAPI
}

func NewCognitoDirectory(client cognitoAPI) *CognitoDirectory {
	return &CognitoDirectory{client: client}
}

func (d *CognitoDirectory) AddUserToGroup(ctx context.Context, username, groupName, userPoolId string) error {
	_, err := d.client.AdminAddUserToGroup(ctx, &cognitoidentityprovider.AdminAddUserToGroupInput{
		UserPoolId: aws.String(userPoolId),
		Username:   aws.String(username),
		GroupName:  aws.String(groupName),
	})
	if err == nil {
		return nil
	}

	var notFound *types.ResourceNotFoundException
	if errors.As(err, &notFound) {
		return fmt.Errorf("%w: %s: %v", ErrGroupNotFound, groupName, err)
	}
	return fmt.Errorf("failed to add user %s to group %s: %w", username, groupName, err)
}
