package db

// ApplicationModel is the stored application configuration. Every optional
// field is a pointer so that a missing attribute stays distinguishable from
// its zero value.
type ApplicationModel struct {
	DocumentId           string   `bson:"_id" json:"-"`
	ID                   *string  `bson:"Id,omitempty" json:"Id,omitempty"`
	Name                 *string  `bson:"Name,omitempty" json:"Name,omitempty"`
	Description          *string  `bson:"Description,omitempty" json:"Description,omitempty"`
	Model                *string  `bson:"Model,omitempty" json:"Model,omitempty"`
	Workspace            *string  `bson:"Workspace,omitempty" json:"Workspace,omitempty"`
	SystemPrompt         *string  `bson:"SystemPrompt,omitempty" json:"SystemPrompt,omitempty"`
	SystemPromptRag      *string  `bson:"SystemPromptRag,omitempty" json:"SystemPromptRag,omitempty"`
	CondenseSystemPrompt *string  `bson:"CondenseSystemPrompt,omitempty" json:"CondenseSystemPrompt,omitempty"`
	Roles                []string `bson:"Roles,omitempty" json:"Roles,omitempty"`
	AllowImageInput      *bool    `bson:"AllowImageInput,omitempty" json:"AllowImageInput,omitempty"`
	AllowDocumentInput   *bool    `bson:"AllowDocumentInput,omitempty" json:"AllowDocumentInput,omitempty"`
	AllowVideoInput      *bool    `bson:"AllowVideoInput,omitempty" json:"AllowVideoInput,omitempty"`
	OutputModalities     []string `bson:"OutputModalities,omitempty" json:"OutputModalities,omitempty"`
	EnableGuardrails     *bool    `bson:"EnableGuardrails,omitempty" json:"EnableGuardrails,omitempty"`
	Streaming            *bool    `bson:"Streaming,omitempty" json:"Streaming,omitempty"`
	MaxTokens            *int64   `bson:"MaxTokens,omitempty" json:"MaxTokens,omitempty"`
	Temperature          *float64 `bson:"Temperature,omitempty" json:"Temperature,omitempty"`
	TopP                 *float64 `bson:"TopP,omitempty" json:"TopP,omitempty"`
	Seed                 *int64   `bson:"Seed,omitempty" json:"Seed,omitempty"`
	CreateTime           *string  `bson:"CreateTime,omitempty" json:"CreateTime,omitempty"`
	UpdateTime           *string  `bson:"UpdateTime,omitempty" json:"UpdateTime,omitempty"`
}

func (m ApplicationModel) Id() string {
	if len(m.DocumentId) == 0 && m.ID != nil {
		return *m.ID
	}
	return m.DocumentId
}

func (m ApplicationModel) CollectionName() string {
	return "applications"
}
