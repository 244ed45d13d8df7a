package registration

import "sync"

// Outbox collects the navigation and notices a form produces, for adapters
// that deliver them on the next response instead of synchronously.
type Outbox struct {
	mu          sync.Mutex
	navigations []string
	alerts      []string
}

func (o *Outbox) Navigate(path string) {
	o.mu.Lock()
	o.navigations = append(o.navigations, path)
	o.mu.Unlock()
}

func (o *Outbox) Alert(message string) {
	o.mu.Lock()
	o.alerts = append(o.alerts, message)
	o.mu.Unlock()
}

// Drain returns the last requested navigation and all pending notices, then
// empties the outbox.
func (o *Outbox) Drain() (navigation string, alerts []string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if n := len(o.navigations); n > 0 {
		navigation = o.navigations[n-1]
	}
	alerts = o.alerts
	o.navigations = nil
	o.alerts = nil
	return navigation, alerts
}
