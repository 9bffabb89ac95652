package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

const MailTypeConfigUpdated = "config_updated"

type ConfigUpdatedMailData struct {
	RestaurantName string `json:"restaurantName"`
	AgentName      string `json:"agentName"`
	UpdatedAt      string `json:"updatedAt"`
}
