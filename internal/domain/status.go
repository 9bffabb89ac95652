package domain

type Reason string

const (
	ReasonOpen                Reason = "open"
	ReasonClosedTodayInactive Reason = "closed_today_inactive"
	ReasonNotYetOpen          Reason = "not_yet_open"
	ReasonClosedAfterHours    Reason = "closed_after_hours"
)

type StatusResult struct {
	IsOpen  bool   `json:"is_open"`
	Reason  Reason `json:"reason"`
	Message string `json:"message"`
}
