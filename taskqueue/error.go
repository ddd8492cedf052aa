package taskqueue

import (
	"fmt"
)

type QueueErrorKind string

const (
	IdNotFound      QueueErrorKind = "id_not_found"
	Empty           QueueErrorKind = "empty"
	InvalidSchedule QueueErrorKind = "invalid_schedule"
)

type QueueError struct {
	Id   string
	Kind QueueErrorKind
	Raw  error
}

func (e *QueueError) Error() string {
	return fmt.Sprintf(
		"error: kind = %s, id = %s, raw error = %+v",
		e.Kind,
		e.Id,
		e.Raw,
	)
}

func (e *QueueError) Unwrap() error {
	return e.Raw
}

func IsQueueErr(err error, kind QueueErrorKind) bool {
	if err == nil {
		return false
	}
	for {
		queueErr, ok := err.(*QueueError)
		if ok {
			return queueErr.Kind == kind
		}
		switch x := err.(type) {
		case interface{ Unwrap() error }:
			err = x.Unwrap()
			if err == nil {
				return false
			}
		case interface{ Unwrap() []error }:
			for _, err := range x.Unwrap() {
				if IsQueueErr(err, kind) {
					return true
				}
			}
			return false
		default:
			return false
		}
	}
}

func IsIdNotFound(err error) bool {
	return IsQueueErr(err, IdNotFound)
}
func IsEmpty(err error) bool {
	return IsQueueErr(err, Empty)
}
func IsInvalidSchedule(err error) bool {
	return IsQueueErr(err, InvalidSchedule)
}
