package model

// HealthStatus represents the health check status
type HealthStatus struct {
	Status   string   `json:"status"`
	Service  string   `json:"service"`
	Version  string   `json:"version"`
	Features []string `json:"features"` // mounted endpoints, e.g. webhook, proxy
}
