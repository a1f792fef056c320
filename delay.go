package result

import (
	"time"
)

// Delay returns a Future that's fulfilled with val, after waiting for at
// least duration d.
func Delay[T any](val T, d time.Duration) *Future[T] {
	f := newFuture[T]()
	go delayHandler(f, d, func() { f.fulfill(val) })
	return f
}

// DelayReject returns a Future that's rejected with reason, after waiting
// for at least duration d.
func DelayReject[T any](reason any, d time.Duration) *Future[T] {
	f := newFuture[T]()
	go delayHandler(f, d, func() { f.reject(reason) })
	return f
}

func delayHandler[T any](f *Future[T], d time.Duration, settle func()) {
	time.Sleep(d)
	if set, _ := f.status.SetResolving(); set {
		settle()
	}
}
