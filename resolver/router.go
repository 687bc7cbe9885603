package resolver

import (
	"context"
	"encoding/json"

	"github.com/SaiNageswarS/chatbot-api/auth"
	"github.com/SaiNageswarS/chatbot-api/sessions"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// SessionOperations is the surface of sessions.SessionService the resolvers use.
type SessionOperations interface {
	ListSessions(ctx context.Context) ([]sessions.SessionSummary, error)
	GetSession(ctx context.Context, id string) (*sessions.SessionResponse, error)
	DeleteSession(ctx context.Context, id string) (sessions.DeleteResult, error)
	DeleteUserSessions(ctx context.Context) ([]sessions.DeleteResult, error)
}

type fieldResolver func(ctx context.Context, arguments json.RawMessage) (any, error)

type Router struct {
	resolvers map[string]fieldResolver
}

func NewRouter(service SessionOperations) *Router {
	return &Router{
		resolvers: map[string]fieldResolver{
			"listSessions": func(ctx context.Context, _ json.RawMessage) (any, error) {
				return service.ListSessions(ctx)
			},
			"getSession": func(ctx context.Context, arguments json.RawMessage) (any, error) {
				args, err := decodeIdArguments(arguments)
				if err != nil {
					return nil, err
				}

				session, err := service.GetSession(ctx, args.Id)
				if err != nil || session == nil {
					// Keep a typed nil out of the interface so it encodes as null.
					return nil, err
				}
				return session, nil
			},
			"deleteUserSessions": func(ctx context.Context, _ json.RawMessage) (any, error) {
				return service.DeleteUserSessions(ctx)
			},
			"deleteSession": func(ctx context.Context, arguments json.RawMessage) (any, error) {
				args, err := decodeIdArguments(arguments)
				if err != nil {
					return nil, err
				}
				return service.DeleteSession(ctx, args.Id)
			},
		},
	}
}

// Handle dispatches one resolver invocation by field name.
func (r *Router) Handle(ctx context.Context, event Event) (any, error) {
	resolve, ok := r.resolvers[event.Info.FieldName]
	if !ok {
		return nil, toLambdaError(status.Errorf(codes.Unimplemented, "no resolver for field %q", event.Info.FieldName))
	}

	ctx = auth.WithIdentity(ctx, callerIdentity(event.Identity))
	result, err := resolve(ctx, event.Arguments)
	if err != nil {
		logger.Error("Resolver failed", zap.String("field", event.Info.FieldName), zap.Error(err))
		return nil, toLambdaError(err)
	}
	return result, nil
}

func decodeIdArguments(arguments json.RawMessage) (idArguments, error) {
	var args idArguments
	if len(arguments) == 0 {
		return args, nil
	}

	if err := json.Unmarshal(arguments, &args); err != nil {
		return args, status.Error(codes.InvalidArgument, "malformed arguments")
	}
	return args, nil
}
