// Package page renders the portfolio page and models its anchor targets.
package page

import (
	"github.com/angeloflores/folio/internal/content"
	"github.com/angeloflores/folio/internal/nav"
)

// Anchor is a section element of the rendered document.
type Anchor struct {
	id    string
	Label string
}

func (a Anchor) ID() string { return a.id }

// Document indexes the anchors of one rendered page.
type Document struct {
	anchors []Anchor
	byID    map[string]int
}

// NewDocument builds the document for c. Each content section is an anchor.
func NewDocument(c *content.Content) *Document {
	d := &Document{byID: make(map[string]int)}
	if c == nil {
		return d
	}
	for _, s := range c.Sections {
		if _, dup := d.byID[s.ID]; dup {
			continue
		}
		d.byID[s.ID] = len(d.anchors)
		d.anchors = append(d.anchors, Anchor{id: s.ID, Label: s.Label})
	}
	return d
}

// ElementByID implements nav.Document.
func (d *Document) ElementByID(id string) (nav.Element, bool) {
	i, ok := d.byID[id]
	if !ok {
		return nil, false
	}
	return d.anchors[i], true
}

// Anchors returns the anchors in document order.
func (d *Document) Anchors() []Anchor {
	out := make([]Anchor, len(d.anchors))
	copy(out, d.anchors)
	return out
}

// ScrollRequest is a scroll the client should animate after load.
type ScrollRequest struct {
	Target  string
	Options nav.ScrollOptions
}

// Viewport collects scroll requests for a single page load.
type Viewport struct {
	requests []ScrollRequest
}

// ScrollIntoView implements nav.Scroller.
func (v *Viewport) ScrollIntoView(el nav.Element, opts nav.ScrollOptions) {
	v.requests = append(v.requests, ScrollRequest{Target: el.ID(), Options: opts})
}

// Requests returns every recorded request in order.
func (v *Viewport) Requests() []ScrollRequest {
	out := make([]ScrollRequest, len(v.requests))
	copy(out, v.requests)
	return out
}

// Last returns the most recent request, which is the one that wins.
func (v *Viewport) Last() (ScrollRequest, bool) {
	if len(v.requests) == 0 {
		return ScrollRequest{}, false
	}
	return v.requests[len(v.requests)-1], true
}
