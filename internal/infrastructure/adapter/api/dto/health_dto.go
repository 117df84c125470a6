package dto

// HealthResponse is the payload of GET /health
type HealthResponse struct {
	Status   string `json:"status"`
	BotToken string `json:"bot_token"`
	Store    string `json:"store"`
	Mode     string `json:"mode"`
}
