package dto

// MonthBucket is one month of paid revenue; months without revenue carry zero.
type MonthBucket struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

type DashboardResponse struct {
	TotalRevenue    float64           `json:"totalRevenue"`
	TotalMissions   int               `json:"totalMissions"`
	PendingMissions int               `json:"pendingMissions"`
	PaidMissions    int               `json:"paidMissions"`
	RecentMissions  []MissionResponse `json:"recentMissions"`
	MonthlyRevenue  []MonthBucket     `json:"monthlyRevenue"`
	Currency        string            `json:"currency"`
	Year            int               `json:"year"`
}
