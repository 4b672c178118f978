package info

const (
	WelcomeText    = "Welcome to Agent Axum API"
	WelcomeMessage = "API is ready to handle requests"
	EchoMessage    = "Echo endpoint - returns query parameters"
)
