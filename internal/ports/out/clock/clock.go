package clock

import "time"

// Clock abstracts time for services so tests can pin it.
type Clock interface {
	Now() time.Time
}
