package utils

// Result is what every usecase method returns.
type Result struct {
	Data  interface{}
	Error error
}
