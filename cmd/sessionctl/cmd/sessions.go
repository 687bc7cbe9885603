package cmd

import (
	"context"
	"fmt"

	"github.com/SaiNageswarS/chatbot-api/appconfig"
	"github.com/SaiNageswarS/chatbot-api/auth"
	"github.com/SaiNageswarS/chatbot-api/db"
	"github.com/SaiNageswarS/chatbot-api/sessions"
	"github.com/SaiNageswarS/go-api-boot/dotenv"
	"github.com/SaiNageswarS/go-api-boot/odm"
	"github.com/spf13/cobra"
)

var (
	userId string
	roles  []string
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List, show and delete a user's sessions",
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the user's sessions",
	Args:  cobra.NoArgs,
	RunE: withService(func(cmd *cobra.Command, ctx context.Context, service *sessions.SessionService, args []string) error {
		result, err := service.ListSessions(ctx)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), result)
	}),
}

var sessionsGetCmd = &cobra.Command{
	Use:   "get <session-id>",
	Short: "Show one session as the resolver would return it",
	Args:  cobra.ExactArgs(1),
	RunE: withService(func(cmd *cobra.Command, ctx context.Context, service *sessions.SessionService, args []string) error {
		result, err := service.GetSession(ctx, args[0])
		if err != nil {
			return err
		}
		if result == nil {
			return fmt.Errorf("session %s not found", args[0])
		}
		return printJSON(cmd.OutOrStdout(), result)
	}),
}

var sessionsDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete one session",
	Args:  cobra.ExactArgs(1),
	RunE: withService(func(cmd *cobra.Command, ctx context.Context, service *sessions.SessionService, args []string) error {
		result, err := service.DeleteSession(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), result)
	}),
}

var sessionsDeleteAllCmd = &cobra.Command{
	Use:   "delete-all",
	Short: "Delete every session of the user",
	Args:  cobra.NoArgs,
	RunE: withService(func(cmd *cobra.Command, ctx context.Context, service *sessions.SessionService, args []string) error {
		result, err := service.DeleteUserSessions(ctx)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), result)
	}),
}

type serviceRunE func(cmd *cobra.Command, ctx context.Context, service *sessions.SessionService, args []string) error

// withService connects to MongoDB and runs fn as the --user principal.
func withService(fn serviceRunE) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		dotenv.LoadEnv()

		cfg, err := appconfig.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		mongoClient, err := db.Connect(cmd.Context(), cfg.MongoURI)
		if err != nil {
			return err
		}
		defer func() { _ = mongoClient.Disconnect(context.Background()) }()

		service := sessions.ProvideSessionService(
			sessions.NewMongoSessionStore(odm.CollectionOf[db.SessionModel](mongoClient, cfg.Tenant)),
			sessions.NewMongoApplicationStore(odm.CollectionOf[db.ApplicationModel](mongoClient, cfg.Tenant)),
		)

		return fn(cmd, principalContext(cmd.Context()), service, args)
	}
}

func principalContext(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	principalRoles := roles
	if principalRoles == nil {
		principalRoles = []string{}
	}
	return auth.WithIdentity(ctx, auth.Identity{UserId: userId, Roles: principalRoles})
}

func init() {
	sessionsCmd.PersistentFlags().StringVar(&userId, "user", "", "User id (IdP subject) to act as")
	sessionsCmd.PersistentFlags().StringSliceVar(&roles, "role", nil, "Role of the acting user (repeatable)")
	_ = sessionsCmd.MarkPersistentFlagRequired("user")

	sessionsCmd.AddCommand(sessionsListCmd, sessionsGetCmd, sessionsDeleteCmd, sessionsDeleteAllCmd)
	rootCmd.AddCommand(sessionsCmd)
}
