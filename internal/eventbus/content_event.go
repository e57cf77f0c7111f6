package eventbus

type ContentEventType string

const (
	ContentEventCreated ContentEventType = "Created"
	ContentEventUpdated ContentEventType = "Updated"
	ContentEventDeleted ContentEventType = "Deleted"
)

// ContentEvent is published after a collection mutation committed.
// FailedDeletes carries stored paths whose file removal failed, so a
// subscriber can alert or schedule a retry.
type ContentEvent struct {
	Type          ContentEventType
	Collection    string
	RecordID      uint
	FailedDeletes []string
}

type ContentEventHandler func(event ContentEvent) error
