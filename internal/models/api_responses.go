package models

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the success payload of POST /api/chat.
type ChatResponse struct {
	Response   string  `json:"response"`
	Confidence float64 `json:"confidence"`
	Status     string  `json:"status"`
}

// HealthResponse reports engine readiness for GET /api/health.
type HealthResponse struct {
	Status        string `json:"status"`
	ChatbotLoaded bool   `json:"chatbot_loaded"`
	TotalTopics   int    `json:"total_topics"`
}

// StatusResponse is the API index payload for GET /.
type StatusResponse struct {
	Status    string            `json:"status"`
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}
