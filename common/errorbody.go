package common

// ErrorBody is the uniform JSON error payload of the emulator REST surface.
type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}
