package sessions

import (
	"context"

	"github.com/SaiNageswarS/chatbot-api/auth"
	"github.com/SaiNageswarS/chatbot-api/validation"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type SessionService struct {
	sessions     SessionStore
	applications ApplicationStore
}

func ProvideSessionService(sessions SessionStore, applications ApplicationStore) *SessionService {
	return &SessionService{
		sessions:     sessions,
		applications: applications,
	}
}

func (s *SessionService) ListSessions(ctx context.Context) ([]SessionSummary, error) {
	userId, err := auth.RequireUserId(ctx)
	if err != nil {
		return nil, err
	}

	found, err := s.sessions.ListSessionsByUser(ctx, userId)
	if err != nil {
		logger.Error("Error listing sessions", zap.String("userId", userId), zap.Error(err))
		return nil, status.Error(codes.Internal, "Internal server error")
	}

	summaries := make([]SessionSummary, 0, len(found))
	for _, session := range found {
		summaries = append(summaries, summarize(session))
	}
	return summaries, nil
}

// GetSession returns nil, nil when the caller owns no session with this id.
func (s *SessionService) GetSession(ctx context.Context, id string) (*SessionResponse, error) {
	if err := validation.ValidateID("id", id); err != nil {
		return nil, err
	}

	userId, err := auth.RequireUserId(ctx)
	if err != nil {
		return nil, err
	}

	roles, err := auth.RequireUserRoles(ctx)
	if err != nil {
		return nil, err
	}

	session, err := s.sessions.GetSession(ctx, id, userId)
	if err != nil {
		logger.Error("Error fetching session", zap.String("sessionId", id), zap.Error(err))
		return nil, status.Error(codes.Internal, "Internal server error")
	}

	if session == nil {
		return nil, nil
	}

	history, err := projectHistory(session.History, auth.IsPrivileged(roles))
	if err != nil {
		logger.Error("Error encoding session metadata", zap.String("sessionId", id), zap.Error(err))
		return nil, status.Error(codes.Internal, "Internal server error")
	}

	response := &SessionResponse{
		Id:        session.SessionId,
		Title:     sessionTitle(session),
		StartTime: sessionStartTime(session),
		History:   history,
	}

	applicationId := findApplicationId(session.History)
	if len(applicationId) == 0 {
		return response, nil
	}

	response.ApplicationId = applicationId
	response.ApplicationConfig = s.loadApplicationConfig(ctx, id, applicationId)
	if response.ApplicationConfig == nil {
		logger.Info("ApplicationId found but no config available",
			zap.String("sessionId", id),
			zap.String("applicationId", applicationId))
	}

	return response, nil
}

func (s *SessionService) DeleteSession(ctx context.Context, id string) (DeleteResult, error) {
	if err := validation.ValidateID("id", id); err != nil {
		return DeleteResult{}, err
	}

	userId, err := auth.RequireUserId(ctx)
	if err != nil {
		return DeleteResult{}, err
	}

	result, err := s.sessions.DeleteSession(ctx, id, userId)
	if err != nil {
		logger.Error("Error deleting session", zap.String("sessionId", id), zap.Error(err))
		return DeleteResult{}, status.Error(codes.Internal, "Internal server error")
	}
	return result, nil
}

func (s *SessionService) DeleteUserSessions(ctx context.Context) ([]DeleteResult, error) {
	userId, err := auth.RequireUserId(ctx)
	if err != nil {
		return nil, err
	}

	results, err := s.sessions.DeleteUserSessions(ctx, userId)
	if err != nil {
		logger.Error("Error deleting user sessions", zap.String("userId", userId), zap.Error(err))
		return nil, status.Error(codes.Internal, "Internal server error")
	}
	return results, nil
}
