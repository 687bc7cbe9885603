package sessions

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/SaiNageswarS/chatbot-api/db"
)

const noTitle = "<no title>"

func sessionTitle(session *db.SessionModel) string {
	if len(session.History) == 0 {
		return noTitle
	}

	content := session.History[0].Data.Content
	if content == nil || len(*content) == 0 {
		return noTitle
	}
	return *content
}

func sessionStartTime(session *db.SessionModel) string {
	return session.StartTime + "Z"
}

func summarize(session db.SessionModel) SessionSummary {
	return SessionSummary{
		Id:        session.SessionId,
		Title:     sessionTitle(&session),
		StartTime: sessionStartTime(&session),
	}
}

// essentialMetadata is what non-privileged callers get back: the settings a
// client needs to restore the session, in a stable key order.
type essentialMetadata struct {
	ModelId       any `json:"modelId,omitempty"`
	WorkspaceId   any `json:"workspaceId,omitempty"`
	ModelKwargs   any `json:"modelKwargs,omitempty"`
	SessionId     any `json:"sessionId,omitempty"`
	ApplicationId any `json:"applicationId,omitempty"`
}

func newEssentialMetadata(attributes any) essentialMetadata {
	m, ok := attributes.(map[string]any)
	if !ok {
		return essentialMetadata{}
	}

	return essentialMetadata{
		ModelId:       m["modelId"],
		WorkspaceId:   m["workspaceId"],
		ModelKwargs:   m["modelKwargs"],
		SessionId:     m["sessionId"],
		ApplicationId: m["applicationId"],
	}
}

// projectHistory maps stored items to {type, content} and attaches metadata
// for every item that carries additional attributes.
func projectHistory(history []db.HistoryItem, privileged bool) ([]HistoryEntry, error) {
	entries := make([]HistoryEntry, 0, len(history))
	for _, item := range history {
		entry := HistoryEntry{Type: item.Type, Content: item.Data.Content}

		attributes := item.Attributes()
		if isPresent(attributes) {
			var payload any = attributes
			if !privileged {
				payload = newEssentialMetadata(attributes)
			}

			encoded, err := encodeJSON(payload)
			if err != nil {
				return nil, err
			}
			entry.Metadata = &encoded
		}

		entries = append(entries, entry)
	}
	return entries, nil
}

// isPresent treats nil, empty strings, empty maps and empty lists as absent.
func isPresent(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	case []any:
		return len(val) > 0
	case bool:
		return val
	default:
		return true
	}
}

func encodeJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
