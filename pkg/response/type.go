package response

// Status values for the webhook response envelope.
const (
	StatusSuccess = "success"
	StatusError   = "error"

	DefaultErrorMessage = "Something went wrong"
)

// Resp is the standard JSON response body.
type Resp struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Results any    `json:"results,omitempty"`
}
