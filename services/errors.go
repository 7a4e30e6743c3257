package services

// ServiceError is a typed error with an HTTP status code. The message is
// the generic text returned to the caller; detailed causes stay in logs.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string { return e.Message }
