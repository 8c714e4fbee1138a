package client

import "time"

type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Country        string    `json:"country"`
	Currency       *string   `json:"currency"`
	Phone          *string   `json:"phone"`
	FreelancerType string    `json:"freelancerType"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Session mirrors the claims frozen into the session token.
type Session struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Country        string `json:"country"`
	Currency       string `json:"currency"`
	Phone          string `json:"phone"`
	FreelancerType string `json:"freelancerType"`
}

type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Missions  []Mission `json:"missions"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ClientSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Mission struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	ClientID  string         `json:"clientId"`
	Client    *ClientSummary `json:"client,omitempty"`
	Amount    float64        `json:"amount"`
	Currency  string         `json:"currency"`
	Date      time.Time      `json:"date"`
	Status    string         `json:"status"`
	Comment   *string        `json:"comment"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

type MonthBucket struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

type Dashboard struct {
	TotalRevenue    float64       `json:"totalRevenue"`
	TotalMissions   int           `json:"totalMissions"`
	PendingMissions int           `json:"pendingMissions"`
	PaidMissions    int           `json:"paidMissions"`
	RecentMissions  []Mission     `json:"recentMissions"`
	MonthlyRevenue  []MonthBucket `json:"monthlyRevenue"`
	Currency        string        `json:"currency"`
	Year            int           `json:"year"`
}

type RegisterRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Country        string `json:"country"`
	Phone          string `json:"phone,omitempty"`
	FreelancerType string `json:"freelancerType"`
}

type ClientRequest struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type MissionRequest struct {
	Title    string  `json:"title"`
	ClientID string  `json:"clientId"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
	Status   string  `json:"status"`
	Comment  string  `json:"comment,omitempty"`
}

// ProfileRequest uses pointers so an omitted field keeps its stored value.
type ProfileRequest struct {
	Name           *string `json:"name,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	Country        *string `json:"country,omitempty"`
	FreelancerType *string `json:"freelancerType,omitempty"`
}

type authResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

type clientPayload struct {
	Message string  `json:"message"`
	Client  *Client `json:"client"`
}

type missionPayload struct {
	Message string   `json:"message"`
	Mission *Mission `json:"mission"`
}
