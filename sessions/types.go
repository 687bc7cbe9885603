package sessions

type SessionSummary struct {
	Id        string `json:"id"`
	Title     string `json:"title"`
	StartTime string `json:"startTime"`
}

// HistoryEntry is the projection of one stored history item. Metadata holds
// the JSON-encoded additional attributes and is omitted when the item has none.
type HistoryEntry struct {
	Type     string  `json:"type"`
	Content  *string `json:"content"`
	Metadata *string `json:"metadata,omitempty"`
}

type ApplicationConfig struct {
	Id                   string   `json:"id"`
	Name                 string   `json:"name"`
	Description          *string  `json:"description"`
	Model                *string  `json:"model"`
	Workspace            *string  `json:"workspace"`
	SystemPrompt         *string  `json:"systemPrompt"`
	SystemPromptRag      *string  `json:"systemPromptRag"`
	CondenseSystemPrompt *string  `json:"condenseSystemPrompt"`
	Roles                []string `json:"roles"`
	AllowImageInput      *bool    `json:"allowImageInput"`
	AllowDocumentInput   *bool    `json:"allowDocumentInput"`
	AllowVideoInput      *bool    `json:"allowVideoInput"`
	OutputModalities     []string `json:"outputModalities"`
	EnableGuardrails     *bool    `json:"enableGuardrails"`
	Streaming            *bool    `json:"streaming"`
	MaxTokens            *int64   `json:"maxTokens"`
	Temperature          *float64 `json:"temperature"`
	TopP                 *float64 `json:"topP"`
	Seed                 *int64   `json:"seed"`
	CreateTime           *string  `json:"createTime"`
	UpdateTime           *string  `json:"updateTime"`
}

type SessionResponse struct {
	Id                string             `json:"id"`
	Title             string             `json:"title"`
	StartTime         string             `json:"startTime"`
	History           []HistoryEntry     `json:"history"`
	ApplicationId     string             `json:"applicationId,omitempty"`
	ApplicationConfig *ApplicationConfig `json:"applicationConfig,omitempty"`
}
