package wolt

import "fmt"

// TransportError covers connection failures, timeouts and non-2xx statuses
// at the fetch gateway. Callers recover by proceeding with degraded data.
type TransportError struct {
	URL    string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("transport failure for %s: status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("transport failure for %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError means the response body was not valid JSON.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode failure for %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
