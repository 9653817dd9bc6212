package domain

// EventPatch is the write payload for events. Every field is tri-state via a
// pointer: nil means the key was absent from the request, a pointer to the
// empty string means the key was present and explicitly empty. JSON encoding
// with omitempty keeps the distinction intact on the wire (a nil field is
// omitted, an explicit empty string is sent as "").
//
// Date, StartTime and EndTime travel as strings so that the normalizer owns
// parsing and can report per-field format errors.
type EventPatch struct {
	Title     *string `json:"title,omitempty"`
	Category  *string `json:"category,omitempty"`
	Date      *string `json:"date,omitempty"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
	GoalColor *string `json:"goalColor,omitempty"`
	EventType *string `json:"eventType,omitempty"`
	RelatedID *string `json:"relatedId,omitempty"`
}

// GoalInput is the write payload for goals.
type GoalInput struct {
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color" yaml:"color"`
}

// TaskInput is the write payload for tasks.
type TaskInput struct {
	Name   string `json:"name" yaml:"name"`
	GoalID string `json:"goalId" yaml:"goalId"`
}

// String returns a patch field set to v. Drafts built by the scheduling
// reconciler use it to mark fields as explicitly present.
func String(v string) *string {
	return &v
}
