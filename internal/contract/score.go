package contract

// ScoreFactor is one labelled contribution to a score. The weight keeps
// its sign so callers can show why a score went up or down.
type ScoreFactor struct {
	Label  string `json:"label"`
	Weight int    `json:"weight"`
}

// ScoreResult is an ephemeral scoring outcome. It is recomputed on every
// call and never persisted; the factor list is mandatory because scores
// drive business decisions and must be explainable.
type ScoreResult struct {
	Score   int           `json:"score"`
	Factors []ScoreFactor `json:"factors"`
}

// LeadScore pairs an account with its lead score for batch ranking.
type LeadScore struct {
	AccountID   string      `json:"accountId"`
	AccountName string      `json:"accountName"`
	Result      ScoreResult `json:"result"`
}
