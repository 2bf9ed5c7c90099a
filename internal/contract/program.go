package contract

// Program item type tags. Each classified item carries exactly one.
const (
	ItemOverdueTask      = "overdue_task"
	ItemUrgentTask       = "urgent_task"
	ItemClientFollowup   = "client_followup"
	ItemMention          = "mention"
	ItemTodayTask        = "today_task"
	ItemHighPriorityTask = "high_priority_task"
	ItemUpcomingTask     = "upcoming_task"
)

// ProgramItem is one entry in a program bucket. DeepDiveID is a stable
// "{entityType}-{entityId}" key letting the caller re-fetch the exact
// record without re-running classification.
type ProgramItem struct {
	Type       string `json:"type"`
	Title      string `json:"title"`
	Detail     string `json:"detail,omitempty"`
	DeepDiveID string `json:"deepDiveId"`
}

// ProgramStats is reduced from the same classified items as the buckets,
// never recomputed independently, so the two can not disagree.
type ProgramStats struct {
	OverdueCount        int `json:"overdueCount"`
	DueTodayCount       int `json:"dueTodayCount"`
	MentionCount        int `json:"mentionCount"`
	StaleAccountCount   int `json:"staleAccountCount"`
	MeetingsToday       int `json:"meetingsToday"`
	UnreadMessages      int `json:"unreadMessages"`
	UnreadNotifications int `json:"unreadNotifications"`
}

// Program is the ranked daily work program: three priority buckets plus
// the stats reduced from them.
type Program struct {
	Urgent    []ProgramItem `json:"urgent"`
	Important []ProgramItem `json:"important"`
	ToPlan    []ProgramItem `json:"toPlan"`
	Stats     ProgramStats  `json:"stats"`
}
