package response

// Response is the envelope every endpoint answers with.
// Data and Message are rendered as null when absent.
type Response[T any] struct {
	Success bool    `json:"success"`
	Data    *T      `json:"data"`
	Message *string `json:"message"`
}

func OK[T any](data T, message *string) Response[T] {
	return Response[T]{Success: true, Data: &data, Message: message}
}

// Fail never carries a payload.
func Fail[T any](message string) Response[T] {
	return Response[T]{Success: false, Message: Msg(message)}
}

// Msg returns a pointer to s, for the optional message field.
func Msg(s string) *string { return &s }
