package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Error представляет ошибку транспорта. Таймауты и отказы сервера
// различимы: для таймаута выставлен Timeout, для отказа — StatusCode
// и сообщение из тела ответа.
type Error struct {
	Message    string
	Details    json.RawMessage
	StatusCode int // 0 для сетевых ошибок и таймаутов
	Timeout    bool
}

func (e *Error) Error() string {
	if e.Timeout {
		return fmt.Sprintf("request timed out: %s", e.Message)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
	}
	return e.Message
}

// IsTimeout reports whether err is a transport timeout.
func IsTimeout(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Timeout
}
