package debounce

import "time"

// Token identifies a scheduled callback.
type Token uint64

// Scheduler runs single-shot callbacks after a delay.
// ScheduleOnce must never invoke fn synchronously.
type Scheduler interface {
	ScheduleOnce(delay time.Duration, fn func()) Token
	Cancel(tok Token)
}
