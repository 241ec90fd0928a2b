package response

type HealthCheck struct {
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp string                 `json:"timestamp"`
	Checks    map[string]HealthCheck `json:"checks"`
}
