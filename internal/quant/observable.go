package quant

import "sync"

// Observer receives change notifications from an Observable.
type Observer interface {
	Update()
}

// Observable is a subscriber registry. Market inputs embed it so that
// dependents can register for change notification; registration and
// removal are safe for concurrent use, while notification fan-out runs
// synchronously on the mutating caller's goroutine.
//
// The zero value is ready to use.
type Observable struct {
	mu        sync.Mutex
	observers map[Observer]struct{}
}

func (o *Observable) Attach(obs Observer) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.observers == nil {
		o.observers = make(map[Observer]struct{})
	}
	o.observers[obs] = struct{}{}
}

func (o *Observable) Detach(obs Observer) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.observers, obs)
}

// Notify calls Update on every registered observer. The registry is
// snapshotted first so observers may attach or detach re-entrantly.
func (o *Observable) Notify() {
	o.mu.Lock()
	snapshot := make([]Observer, 0, len(o.observers))
	for obs := range o.observers {
		snapshot = append(snapshot, obs)
	}
	o.mu.Unlock()

	for _, obs := range snapshot {
		obs.Update()
	}
}
