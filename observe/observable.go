// Package observe provides a minimal observer pattern used by dashboard
// panels to learn about changes to in-memory collections.
package observe

// Listener is called with the subject of an Observable after it has changed.
// Returning an error aborts the notification of any listeners registered
// after it.
type Listener[S any] func(subject S) error

// Observable holds an ordered set of listeners and the subject passed to
// them on notification.  It is not safe for concurrent use.
type Observable[S any] struct {
	subject   S
	listeners []Listener[S]
}

// NewObservable returns an Observable that passes subject to its listeners
func NewObservable[S any](subject S) *Observable[S] {
	return &Observable[S]{subject: subject}
}

// RegisterListener appends fn to the listeners.  Listeners are not
// deduplicated, registering the same function twice means it is called twice
// on every notification.
func (o *Observable[S]) RegisterListener(fn Listener[S]) {
	o.listeners = append(o.listeners, fn)
}

// Listeners returns the number of registered listeners
func (o *Observable[S]) Listeners() int {
	return len(o.listeners)
}

// Notify calls every listener in registration order.  The first listener
// error stops the notification and is returned.
func (o *Observable[S]) Notify() error {

	for _, fn := range o.listeners {
		if err := fn(o.subject); err != nil {
			return err
		}
	}

	return nil
}
