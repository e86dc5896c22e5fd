package toc

import (
	"fmt"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	slug "github.com/goliatone/go-slug"

	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// State reports whether an indexer is watching a region.
type State int

const (
	StateIdle State = iota
	StateObserving
)

func (s State) String() string {
	if s == StateObserving {
		return "observing"
	}
	return "idle"
}

// fallbackID is used when a heading's text normalizes to nothing.
const fallbackID = "section"

// Indexer maintains the heading list for one region at a time. Passes are
// synchronous and serialized; re-running a pass over an unchanged region
// yields the same ids and the same list.
type Indexer struct {
	mu         sync.Mutex
	state      State
	region     *DocumentRegion
	notifier   Notifier
	subscriber func([]Heading)
	headings   []Heading
	logger     interfaces.Logger
}

// NewIndexer constructs an idle indexer. The subscriber receives the
// heading list after every pass; nil is allowed.
func NewIndexer(subscriber func([]Heading), logger interfaces.Logger) *Indexer {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Indexer{
		subscriber: subscriber,
		logger:     logger,
	}
}

// State returns the indexer's current state.
func (ix *Indexer) State() State {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return ix.state
}

// Headings returns a copy of the most recently published list.
func (ix *Indexer) Headings() []Heading {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return append([]Heading(nil), ix.headings...)
}

// Attach runs an initial pass over the region and subscribes to the
// notifier for rebuilds. A nil region leaves the indexer idle and publishes
// an empty list. Attaching replaces any previous attachment.
func (ix *Indexer) Attach(region *DocumentRegion, notifier Notifier) {
	ix.mu.Lock()
	ix.detachLocked()

	if region == nil {
		ix.headings = nil
		sub := ix.subscriber
		ix.mu.Unlock()

		ix.logger.Debug("toc: no region to observe")
		if sub != nil {
			sub(nil)
		}
		return
	}

	ix.region = region
	ix.notifier = notifier
	ix.state = StateObserving
	published := ix.rebuildLocked()
	ix.mu.Unlock()

	if notifier != nil {
		notifier.Subscribe(ix.Rebuild)
	}
	ix.publish(published)
}

// Detach unsubscribes from the notifier and returns the indexer to idle.
// The region keeps any ids already written.
func (ix *Indexer) Detach() {
	ix.mu.Lock()
	ix.detachLocked()
	ix.mu.Unlock()
}

func (ix *Indexer) detachLocked() {
	if ix.notifier != nil {
		ix.notifier.Unsubscribe()
		ix.notifier = nil
	}
	ix.region = nil
	ix.state = StateIdle
}

// Rebuild re-walks the observed region and publishes the fresh list. A call
// on an idle indexer is a no-op.
func (ix *Indexer) Rebuild() {
	ix.mu.Lock()
	if ix.state != StateObserving {
		ix.mu.Unlock()
		return
	}
	published := ix.rebuildLocked()
	ix.mu.Unlock()

	ix.publish(published)
}

func (ix *Indexer) publish(headings []Heading) {
	if ix.subscriber != nil {
		ix.subscriber(headings)
	}
}

// rebuildLocked walks h2/h3 in document order, ensuring every heading ends
// the pass with a unique id: existing non-empty ids are reused verbatim,
// missing ones are slugified from the text and suffixed -1, -2, ... until
// unique across the whole document, then written back onto the element.
// An authored id is never rewritten, even when it duplicates another
// element's; uniqueness is only enforced for ids this pass assigns.
func (ix *Indexer) rebuildLocked() []Heading {
	used := ix.region.usedIDs()

	var headings []Heading
	ix.region.headings().Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())

		id, _ := s.Attr("id")
		if id == "" {
			id = uniqueID(slugify(text), used)
			used[id] = struct{}{}
			s.SetAttr("id", id)
		}

		level := 3
		if goquery.NodeName(s) == "h2" {
			level = 2
		}
		headings = append(headings, Heading{ID: id, Text: text, Level: level})
	})

	ix.headings = headings
	ix.logger.Debug("toc: headings indexed", "count", len(headings))
	return append([]Heading(nil), headings...)
}

func slugify(text string) string {
	normalized, err := slug.Normalize(text)
	if err != nil || normalized == "" {
		return fallbackID
	}
	return normalized
}

func uniqueID(base string, used map[string]struct{}) string {
	candidate := base
	for n := 1; ; n++ {
		if _, taken := used[candidate]; !taken {
			return candidate
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
}
