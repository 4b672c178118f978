package health

const (
	StatusHealthy  = "healthy"
	MessageRunning = "Server is running"
)

type Status struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
