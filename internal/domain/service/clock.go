package service

import "time"

// Clock abstracts time so callers can replace real time in tests.
type Clock interface {
	Now() time.Time
}
