package events

// Record change actions.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// RecordChanged is published after the backend accepted a create, update or
// delete issued from the console.
type RecordChanged struct {
	Resource  string
	Action    string
	ID        uint64
	SessionID string
	RequestID string
}

func (e RecordChanged) Name() string {
	return "record.changed"
}
