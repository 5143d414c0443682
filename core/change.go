package core

// ChangeKind indicates how a change modified the buffer.
type ChangeKind int

const (
	InsertChange ChangeKind = iota
	DeleteChange
	ReplaceChange
)

func (k ChangeKind) String() string {
	switch k {
	case InsertChange:
		return "insert"
	case DeleteChange:
		return "delete"
	case ReplaceChange:
		return "replace"
	default:
		return "unknown"
	}
}

// Change is a single journaled text operation.
type Change struct {
	Kind        ChangeKind
	Start       Position // Where the change began
	End         Position // End of the deleted range, or end of the inserted text
	Before      string   // Text removed
	After       string   // Text inserted
	CaretBefore Position // Caret before the change was applied
}
