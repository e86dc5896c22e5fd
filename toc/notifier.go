package toc

import "sync"

// Notifier delivers structural-change callbacks for an observed region.
// Implementations call the subscribed function once per change; the indexer
// serializes the resulting passes.
type Notifier interface {
	Subscribe(fn func())
	Unsubscribe()
}

// ChangeNotifier is a func-based Notifier for server-side use and tests:
// the code that mutates the region calls Notify after each change.
type ChangeNotifier struct {
	mu sync.Mutex
	fn func()
}

func NewChangeNotifier() *ChangeNotifier {
	return &ChangeNotifier{}
}

func (n *ChangeNotifier) Subscribe(fn func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.fn = fn
}

func (n *ChangeNotifier) Unsubscribe() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.fn = nil
}

// Notify reports one structural change to the current subscriber, if any.
func (n *ChangeNotifier) Notify() {
	n.mu.Lock()
	fn := n.fn
	n.mu.Unlock()
	if fn != nil {
		fn()
	}
}
