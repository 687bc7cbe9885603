package sessions

import (
	"context"
	"fmt"

	"github.com/SaiNageswarS/chatbot-api/db"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"go.uber.org/zap"
)

const applicationIdKey = "applicationId"

// findApplicationId returns the applicationId of the first history item that
// carries a non-empty one.
func findApplicationId(history []db.HistoryItem) string {
	for _, item := range history {
		attributes, ok := item.AttributeMap()
		if !ok {
			continue
		}

		if id, ok := attributes[applicationIdKey].(string); ok && len(id) > 0 {
			return id
		}
	}
	return ""
}

// loadApplicationConfig never fails the request: store errors, missing
// records, incomplete records and panics while mapping all yield nil.
func (s *SessionService) loadApplicationConfig(ctx context.Context, sessionId, applicationId string) (config *ApplicationConfig) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Could not map application for session",
				zap.String("applicationId", applicationId),
				zap.String("sessionId", sessionId),
				zap.Any("panic", r))
			config = nil
		}
	}()

	record, err := s.applications.GetApplication(ctx, applicationId)
	if err != nil {
		logger.Error("Could not fetch application for session",
			zap.String("applicationId", applicationId),
			zap.String("sessionId", sessionId),
			zap.Error(err))
		return nil
	}

	if record == nil {
		logger.Info("Application not found", zap.String("applicationId", applicationId))
		return nil
	}

	config, err = mapApplicationFields(record)
	if err != nil {
		logger.Info("Application treated as unavailable",
			zap.String("applicationId", applicationId),
			zap.Error(err))
		return nil
	}
	return config
}

func mapApplicationFields(record *db.ApplicationModel) (*ApplicationConfig, error) {
	if record.ID == nil || len(*record.ID) == 0 || record.Name == nil || len(*record.Name) == 0 {
		return nil, fmt.Errorf("application %s has missing required fields (id or name)", record.Id())
	}

	return &ApplicationConfig{
		Id:                   *record.ID,
		Name:                 *record.Name,
		Description:          record.Description,
		Model:                record.Model,
		Workspace:            record.Workspace,
		SystemPrompt:         record.SystemPrompt,
		SystemPromptRag:      record.SystemPromptRag,
		CondenseSystemPrompt: record.CondenseSystemPrompt,
		Roles:                record.Roles,
		AllowImageInput:      record.AllowImageInput,
		AllowDocumentInput:   record.AllowDocumentInput,
		AllowVideoInput:      record.AllowVideoInput,
		OutputModalities:     record.OutputModalities,
		EnableGuardrails:     record.EnableGuardrails,
		Streaming:            record.Streaming,
		MaxTokens:            record.MaxTokens,
		Temperature:          record.Temperature,
		TopP:                 record.TopP,
		Seed:                 record.Seed,
		CreateTime:           record.CreateTime,
		UpdateTime:           record.UpdateTime,
	}, nil
}
