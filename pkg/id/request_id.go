package id

import "github.com/segmentio/ksuid"

// NewRequestID returns a 27-char, time-sortable KSUID string.
func NewRequestID() string {
	return ksuid.New().String()
}
