package domain

type StatsRequest struct {
	Minutes int `query:"minutes" validate:"min=1,max=1440"` // one day max
}

type EventStats struct {
	UserCount   int64            `json:"user_count"`
	EventCount  int64            `json:"event_count"`
	ByRiskLevel map[string]int64 `json:"by_risk_level"`
}
