package domain

// ContentEvent is a canonical lifecycle change: ContentCreated, ContentUpdated or ContentDeleted.
type ContentEvent interface {
	EventKey() ContentKey
	isContentEvent()
}

type ContentCreated struct {
	Key    ContentKey
	Fields EntryFields
}

type ContentUpdated struct {
	Key    ContentKey
	Fields EntryFields
}

type ContentDeleted struct {
	Key ContentKey
}

func (e ContentCreated) EventKey() ContentKey { return e.Key }
func (e ContentUpdated) EventKey() ContentKey { return e.Key }
func (e ContentDeleted) EventKey() ContentKey { return e.Key }

func (ContentCreated) isContentEvent() {}
func (ContentUpdated) isContentEvent() {}
func (ContentDeleted) isContentEvent() {}

// EventName is used for logging and metric labels.
func EventName(ev ContentEvent) string {
	switch ev.(type) {
	case ContentCreated:
		return "created"
	case ContentUpdated:
		return "updated"
	case ContentDeleted:
		return "deleted"
	}
	return "unknown"
}
