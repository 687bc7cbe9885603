package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/SaiNageswarS/chatbot-api/appconfig"
	"github.com/SaiNageswarS/chatbot-api/groupsync"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	eventPath       string
	securityGroupId string
	groupName       string
)

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Work with the post-confirmation group hook",
}

var hookSimulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the hook against an event file without touching the directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(eventPath)
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		var event groupsync.PostConfirmationEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			return fmt.Errorf("failed to parse event: %w", err)
		}

		directory := &dryRunDirectory{}
		hook := groupsync.NewHook(directory, securityGroupId, groupName)
		result, outcome := hook.Process(cmd.Context(), &event)
		return printJSON(cmd.OutOrStdout(), map[string]any{
			"approved":      outcome.Approved,
			"directoryCall": directory.call,
			"event":         result,
		})
	},
}

type dryRunDirectory struct {
	call map[string]string
}

func (d *dryRunDirectory) AddUserToGroup(ctx context.Context, username, groupName, userPoolId string) error {
	d.call = map[string]string{"username": username, "groupName": groupName, "userPoolId": userPoolId}
	logger.Info("Dry run: would add user to group",
		zap.String("username", username),
		zap.String("group", groupName),
		zap.String("userPoolId", userPoolId))
	return nil
}

func init() {
	hookSimulateCmd.Flags().StringVar(&eventPath, "event", "", "Path to a post-confirmation event JSON file")
	hookSimulateCmd.Flags().StringVar(&securityGroupId, "security-group", appconfig.DefaultSecurityGroupID, "Security group id that grants access")
	hookSimulateCmd.Flags().StringVar(&groupName, "group", appconfig.DefaultTargetGroupName, "Directory group to assign")
	_ = hookSimulateCmd.MarkFlagRequired("event")

	hookCmd.AddCommand(hookSimulateCmd)
	rootCmd.AddCommand(hookCmd)
}
