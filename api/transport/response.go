package transport

import "encoding/json"

// Result is the success body shared by the JSON endpoints: a boolean
// flag, a human-readable message and an optional payload.
type Result struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorBody is the failure body. The message is deliberately generic;
// authentication failures never name the offending field.
type ErrorBody struct {
	Error string `json:"error"`
}

// NewResult returns a success body.
func NewResult(message string, data interface{}) Result {
	return Result{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NewErrorBody returns a failure body.
func NewErrorBody(message string) ErrorBody {
	return ErrorBody{Error: message}
}

// String returns the JSON representation (best-effort) for logging purposes.
func (r Result) String() string {
	out, err := json.Marshal(r)
	if err != nil {
		return "{}"
	}
	return string(out)
}
