package utils

import "fmt"

// HTTPError - ошибка, которую ErrorHandler отдаёт клиенту как {status, message}
type HTTPError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func CreateError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}
