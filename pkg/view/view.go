// Package view implements the view-mode coordinator: a single-active-mode
// state machine over the normal, search, pending-filter, and chain views
// of one diary, with the reply overlay on top. The coordinator decides
// which query the entry store runs and which result set collaborators
// render; it holds no persisted state and is rebuilt per session.
package view

import (
	"github.com/oddworks/onelogs/pkg/chain"
	"github.com/oddworks/onelogs/pkg/types"
)

// Mode identifies the active filtered view. Exactly one is active at a
// time; the reply overlay is tracked separately.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModePending
	ModeChain
)

// String returns the mode name for display.
func (m Mode) String() string {
	switch m {
	case ModeSearch:
		return "search"
	case ModePending:
		return "pending"
	case ModeChain:
		return "chain"
	default:
		return "normal"
	}
}

// View is one renderable result set. ScrollTo is the index to bring into
// view, -1 when there is no scroll target.
type View struct {
	Entries  []types.DiaryEntry
	ScrollTo int
}

// Coordinator governs mode transitions for one diary session. Entering
// any of search, pending, or chain cancels whichever of the three was
// active; modes never stack.
type Coordinator struct {
	store          types.EntryStore
	listLimit      int
	chainScanLimit int

	mode        Mode
	query       string
	replying    bool
	replyTarget int64
	chainAnchor int64 // entry that opened chain view; scroll restore on exit
}

// Default limits carried over from the interactive surface.
const (
	DefaultListLimit      = 150
	DefaultChainScanLimit = 1000
)

// NewCoordinator returns a coordinator in normal mode. Non-positive
// limits fall back to the defaults.
func NewCoordinator(store types.EntryStore, listLimit, chainScanLimit int) *Coordinator {
	if listLimit <= 0 {
		listLimit = DefaultListLimit
	}
	if chainScanLimit <= 0 {
		chainScanLimit = DefaultChainScanLimit
	}
	return &Coordinator{
		store:          store,
		listLimit:      listLimit,
		chainScanLimit: chainScanLimit,
	}
}

// Mode returns the active view mode.
func (c *Coordinator) Mode() Mode { return c.mode }

// Query returns the active search query, empty outside search mode.
func (c *Coordinator) Query() string { return c.query }

// Replying reports whether the reply overlay is active.
func (c *Coordinator) Replying() bool { return c.replying }

// ReplyTarget returns the entry id a reply would link to.
func (c *Coordinator) ReplyTarget() (int64, bool) {
	if !c.replying {
		return 0, false
	}
	return c.replyTarget, true
}

// Refresh re-fetches the unfiltered last-N view for the current normal
// mode, scrolled to the end.
func (c *Coordinator) Refresh() (View, error) {
	entries, err := c.store.ListActive(c.listLimit)
	if err != nil {
		return View{}, err
	}
	return View{Entries: entries, ScrollTo: len(entries) - 1}, nil
}

// EnterSearch activates search mode with the given query, cancelling any
// other filtered mode first. An empty query shows the unfiltered view
// while keeping search active.
func (c *Coordinator) EnterSearch(query string) (View, error) {
	c.leaveFilteredMode()
	c.mode = ModeSearch
	c.query = query

	entries, err := c.store.ListActive(c.listLimit)
	if err != nil {
		return View{}, err
	}
	return View{Entries: FilterQuery(entries, query), ScrollTo: -1}, nil
}

// EnterPending activates the pending-task filter, cancelling any other
// filtered mode first.
func (c *Coordinator) EnterPending() (View, error) {
	c.leaveFilteredMode()
	c.mode = ModePending

	entries, err := c.store.ListActive(c.listLimit)
	if err != nil {
		return View{}, err
	}
	return View{Entries: FilterPending(entries), ScrollTo: -1}, nil
}

// EnterChain activates chain view anchored at startID. Requesting chain
// view while the reply overlay is active is rejected as a no-op: the mode
// is left unchanged and the current view is returned.
func (c *Coordinator) EnterChain(startID int64) (View, error) {
	if c.replying {
		return c.currentView()
	}
	c.leaveFilteredMode()
	c.mode = ModeChain
	c.chainAnchor = startID

	// Resolve over the full set, deleted included, so chains survive
	// soft-deleted intermediate nodes; render from the active list.
	full, err := c.store.ListAll(c.chainScanLimit)
	if err != nil {
		return View{}, err
	}
	ids := chain.Compute(full, startID)

	entries, err := c.store.ListActive(c.listLimit)
	if err != nil {
		return View{}, err
	}
	filtered := chain.Filter(entries, ids)
	return View{Entries: filtered, ScrollTo: indexOf(filtered, startID)}, nil
}

// BeginReply arms the reply overlay targeting the given entry. Reply is
// exclusive with chain view, so an active chain view is cancelled back to
// the unfiltered list first.
func (c *Coordinator) BeginReply(targetID int64) (View, error) {
	if c.mode == ModeChain {
		view, err := c.exitChain()
		if err != nil {
			return View{}, err
		}
		c.replying = true
		c.replyTarget = targetID
		return view, nil
	}
	c.replying = true
	c.replyTarget = targetID
	return c.currentView()
}

// Cancel resolves a single cancel action by priority: the reply overlay
// first, then chain view, then search. In pending or normal mode it
// restores the unfiltered view.
func (c *Coordinator) Cancel() (View, error) {
	if c.replying {
		c.replying = false
		c.replyTarget = 0
		return c.currentView()
	}

	switch c.mode {
	case ModeChain:
		return c.exitChain()
	case ModeSearch:
		c.mode = ModeNormal
		c.query = ""
		return c.Refresh()
	case ModePending:
		c.mode = ModeNormal
		return c.Refresh()
	default:
		return c.Refresh()
	}
}

// exitChain restores the unfiltered view, scrolling back to the entry
// that opened chain view when it is still present, else to the end.
func (c *Coordinator) exitChain() (View, error) {
	anchor := c.chainAnchor
	c.mode = ModeNormal
	c.chainAnchor = 0

	entries, err := c.store.ListActive(c.listLimit)
	if err != nil {
		return View{}, err
	}
	scrollTo := indexOf(entries, anchor)
	if scrollTo < 0 {
		scrollTo = len(entries) - 1
	}
	return View{Entries: entries, ScrollTo: scrollTo}, nil
}

// leaveFilteredMode clears whichever of search, pending, or chain is
// active so the next mode starts from normal state.
func (c *Coordinator) leaveFilteredMode() {
	c.mode = ModeNormal
	c.query = ""
	c.chainAnchor = 0
}

// currentView re-runs the query for the active mode without changing it.
func (c *Coordinator) currentView() (View, error) {
	switch c.mode {
	case ModeSearch:
		entries, err := c.store.ListActive(c.listLimit)
		if err != nil {
			return View{}, err
		}
		return View{Entries: FilterQuery(entries, c.query), ScrollTo: -1}, nil
	case ModePending:
		entries, err := c.store.ListActive(c.listLimit)
		if err != nil {
			return View{}, err
		}
		return View{Entries: FilterPending(entries), ScrollTo: -1}, nil
	case ModeChain:
		anchor := c.chainAnchor
		full, err := c.store.ListAll(c.chainScanLimit)
		if err != nil {
			return View{}, err
		}
		ids := chain.Compute(full, anchor)
		entries, err := c.store.ListActive(c.listLimit)
		if err != nil {
			return View{}, err
		}
		filtered := chain.Filter(entries, ids)
		return View{Entries: filtered, ScrollTo: indexOf(filtered, anchor)}, nil
	default:
		return c.Refresh()
	}
}

// indexOf returns the position of the entry with the given id, or -1.
func indexOf(entries []types.DiaryEntry, id int64) int {
	for i, e := range entries {
		if e.EntryID == id {
			return i
		}
	}
	return -1
}
