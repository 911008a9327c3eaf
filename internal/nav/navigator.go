// Package nav scrolls the viewport to named sections of a page.
package nav

// SectionID identifies an anchor target in a rendered document.
type SectionID string

// Element is an anchor target found in a document.
type Element interface {
	ID() string
}

// Document looks up anchor targets by identifier.
type Document interface {
	ElementByID(id string) (Element, bool)
}

// ScrollBehavior mirrors the browser's scroll behavior values.
type ScrollBehavior string

const (
	BehaviorSmooth  ScrollBehavior = "smooth"
	BehaviorInstant ScrollBehavior = "instant"
)

// ScrollBlock is the vertical alignment of the target within the viewport.
type ScrollBlock string

const BlockStart ScrollBlock = "start"

// ScrollOptions describes a scroll request. The animation itself belongs to
// the rendering engine.
type ScrollOptions struct {
	Behavior ScrollBehavior
	Block    ScrollBlock
}

// Scroller performs scroll requests.
type Scroller interface {
	ScrollIntoView(el Element, opts ScrollOptions)
}

// Event is the user action that triggered navigation.
type Event interface {
	PreventDefault()
}

// Navigator is stateless; calls may repeat or overlap freely.
type Navigator struct {
	doc      Document
	scroller Scroller
}

// New returns a Navigator over doc that scrolls through scroller.
func New(doc Document, scroller Scroller) *Navigator {
	return &Navigator{doc: doc, scroller: scroller}
}

// NavigateTo smooth-scrolls so the section's top aligns with the viewport.
// A missing section is a silent no-op. It reports whether a scroll was
// requested.
func (n *Navigator) NavigateTo(id SectionID) bool {
	if n == nil || n.doc == nil || n.scroller == nil || id == "" {
		return false
	}
	el, ok := n.doc.ElementByID(string(id))
	if !ok || el == nil {
		return false
	}
	n.scroller.ScrollIntoView(el, ScrollOptions{Behavior: BehaviorSmooth, Block: BlockStart})
	return true
}

// HandleClick suppresses the link's default jump, then navigates.
func (n *Navigator) HandleClick(ev Event, id SectionID) bool {
	if ev != nil {
		ev.PreventDefault()
	}
	return n.NavigateTo(id)
}
