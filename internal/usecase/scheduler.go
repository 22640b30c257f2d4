package usecase

import "time"

// TimerScheduler - runs each task on its own goroutine once the delay has passed.
type TimerScheduler struct{}

func (TimerScheduler) Schedule(delay time.Duration, task func()) func() {
	timer := time.AfterFunc(delay, task)

	return func() {
		timer.Stop()
	}
}
