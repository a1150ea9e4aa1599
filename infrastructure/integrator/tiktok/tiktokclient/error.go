package tiktokclient

import "fmt"

// APIError is a failed call: either a non 2xx status or an envelope whose code
// is not zero.
type APIError struct {
	Method    string
	Path      string
	Status    int
	Code      int64
	Message   string
	RequestID string
}

func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("tiktok api: %s %s: code %d: %s (request_id=%s)", e.Method, e.Path, e.Code, e.Message, e.RequestID)
	}
	return fmt.Sprintf("tiktok api: %s %s: status %d: %s", e.Method, e.Path, e.Status, e.Message)
}
