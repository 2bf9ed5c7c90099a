package domain

type AccountKind string

const (
	KindClient  AccountKind = "client"
	KindPartner AccountKind = "partner"
)

// Stage is the ordered pipeline phase a client account progresses through.
type Stage string

const (
	StageEntry         Stage = "entry"
	StageExchange      Stage = "exchange"
	StageProposal      Stage = "proposal"
	StageValidation    Stage = "validation"
	StageClientSuccess Stage = "client_success"
)

// StageOrder returns the position of a stage in the pipeline, starting at 0.
// Unknown stages sort before entry.
func StageOrder(s Stage) int {
	switch s {
	case StageEntry:
		return 0
	case StageExchange:
		return 1
	case StageProposal:
		return 2
	case StageValidation:
		return 3
	case StageClientSuccess:
		return 4
	default:
		return -1
	}
}

// ValidStages is the canonical set of accepted pipeline stage strings.
var ValidStages = map[string]bool{
	"entry": true, "exchange": true, "proposal": true,
	"validation": true, "client_success": true,
}

type Importance string

const (
	ImportanceLow    Importance = "low"
	ImportanceMedium Importance = "medium"
	ImportanceHigh   Importance = "high"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

type ActivityType string

const (
	ActivityNote    ActivityType = "note"
	ActivityCall    ActivityType = "call"
	ActivityEmail   ActivityType = "email"
	ActivityMeeting ActivityType = "meeting"
)

// ValidActivityTypes is the canonical set of accepted activity type strings.
var ValidActivityTypes = map[string]bool{
	"note": true, "call": true, "email": true, "meeting": true,
}

type MentionSource string

const (
	MentionFromTask    MentionSource = "task"
	MentionFromProject MentionSource = "project"
	MentionFromCompany MentionSource = "company"
)
