package db

// HistoryData is the payload of a stored message. AdditionalKwargs is loosely
// structured and is usually a document, but older items carry plain values.
type HistoryData struct {
	Content          *string `bson:"content,omitempty" json:"content,omitempty"`
	AdditionalKwargs any     `bson:"additional_kwargs,omitempty" json:"additional_kwargs,omitempty"`
}

type HistoryItem struct {
	Type string      `bson:"type" json:"type"`
	Data HistoryData `bson:"data" json:"data"`
}

// Attributes returns additional_kwargs converted to plain Go values
// (map[string]any, []any, scalars).
func (h HistoryItem) Attributes() any {
	return Normalize(h.Data.AdditionalKwargs)
}

// AttributeMap returns the additional attributes when they form a document.
func (h HistoryItem) AttributeMap() (map[string]any, bool) {
	m, ok := h.Attributes().(map[string]any)
	return m, ok
}

type SessionModel struct {
	SessionId string        `bson:"_id" json:"SessionId"`
	UserId    string        `bson:"UserId" json:"UserId"`
	StartTime string        `bson:"StartTime" json:"StartTime"`
	History   []HistoryItem `bson:"History" json:"History"`
}

func (m SessionModel) Id() string {
	return m.SessionId
}

func (m SessionModel) CollectionName() string {
	return "sessions"
}
