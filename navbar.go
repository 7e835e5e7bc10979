package beautify

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/alnah/go-beautify/internal/htmlutil"
)

// Relation vocabularies, in canonical slot order. The slot order is fixed;
// it does not follow document order. Anchors with any other rel value are
// ignored.
var (
	indexRelations = [...]string{"contents", "index"}
	topicRelations = [...]string{"prev", "up", "next"}
)

// Slot indexes into topicRelations.
const (
	slotPrev = iota
	slotUp
	slotNext
)

// navbarRebuilder abstracts the navigation restructuring pass.
type navbarRebuilder interface {
	Rebuild(doc *goquery.Document, icons IconPair) error
}

// panelRebuilder regroups a legacy flat nav-panel into index and topic
// sub-blocks under a <nav> landmark, and mirrors the result into the
// bottom navbar position when one exists.
type panelRebuilder struct{}

func (panelRebuilder) Rebuild(doc *goquery.Document, icons IconPair) error {
	panels := doc.Find("." + NavPanelClass)
	switch panels.Length() {
	case 0:
		return nil
	case 1, 2:
		// top navbar, optionally mirrored at the bottom
	default:
		return fmt.Errorf("%w: page has %d %s blocks, want at most 2",
			ErrInvalidStructure, panels.Length(), NavPanelClass)
	}

	top := panels.First()
	htmlutil.Retag(top.Get(0), "nav")

	para := top.ChildrenFiltered("p").First()
	if para.Length() == 0 {
		return fmt.Errorf("%w: %s block has no paragraph wrapper",
			ErrInvalidStructure, NavPanelClass)
	}

	// Classify the paragraph's direct anchor children into fixed slots.
	indexSlots := make([]*html.Node, len(indexRelations))
	topicSlots := make([]*html.Node, len(topicRelations))
	para.ChildrenFiltered("a").Each(func(_ int, anchor *goquery.Selection) {
		rel, _ := anchor.Attr("rel")
		if i := relationSlot(indexRelations[:], rel); i >= 0 {
			indexSlots[i] = anchor.Get(0)
		} else if i := relationSlot(topicRelations[:], rel); i >= 0 {
			topicSlots[i] = anchor.Get(0)
		}
	})

	indexGroup := htmlutil.NewElement("div", "class", NavIndexClass)
	topicsGroup := htmlutil.NewElement("div", "class", NavTopicsClass)
	fillGroup(indexGroup, indexSlots)
	fillGroup(topicsGroup, topicSlots)
	para.Remove()

	decorateTopic(topicSlots[slotPrev], icons.Prev, true)
	decorateTopic(topicSlots[slotUp], "", false)
	decorateTopic(topicSlots[slotNext], icons.Next, false)

	top.AppendNodes(indexGroup, topicsGroup)

	if panels.Length() == 2 {
		mirrorBottom(panels.Eq(1), top.Get(0))
	}
	return nil
}

// relationSlot returns the slot index of rel within the vocabulary, or -1.
func relationSlot(vocabulary []string, rel string) int {
	for i, known := range vocabulary {
		if rel == known {
			return i
		}
	}
	return -1
}

// fillGroup appends each slot's anchor in canonical order, substituting an
// empty placeholder for absent relations so a missing link does not
// collapse the layout.
func fillGroup(group *html.Node, slots []*html.Node) {
	for _, anchor := range slots {
		if anchor == nil {
			group.AppendChild(htmlutil.NewElement("span", "class", NavEmptyClass))
			continue
		}
		htmlutil.Detach(anchor)
		group.AppendChild(anchor)
	}
}

// decorateTopic rebuilds a populated prev/up/next anchor as icon+label,
// label only, or label+icon. The anchor's text moves into a label span;
// its previous children are discarded. Nil anchors (placeholder slots) are
// skipped.
func decorateTopic(anchor *html.Node, icon string, iconBefore bool) {
	if anchor == nil {
		return
	}

	label := htmlutil.NewElement("span", "class", NavLabelClass)
	label.AppendChild(htmlutil.NewText(htmlutil.Text(anchor)))
	htmlutil.RemoveChildren(anchor)

	if icon == "" {
		anchor.AppendChild(label)
		return
	}
	img := htmlutil.NewElement("img", "class", NavIconClass, "src", icon, "alt", "")
	if iconBefore {
		anchor.AppendChild(img)
		anchor.AppendChild(label)
	} else {
		anchor.AppendChild(label)
		anchor.AppendChild(img)
	}
}

// mirrorBottom replaces the legacy bottom navbar with a sanitized clone of
// the rebuilt top navbar: rel and accesskey attributes stripped from every
// anchor, grouping containers swapped (topics before index) to mirror the
// usual top/bottom visual convention.
func mirrorBottom(bottom *goquery.Selection, topNav *html.Node) {
	clone := htmlutil.Clone(topNav)
	htmlutil.RemoveAttr(clone, "rel")
	htmlutil.RemoveAttr(clone, "accesskey")
	swapGroups(clone)
	bottom.ReplaceWithNodes(clone)
}

func swapGroups(nav *html.Node) {
	var index, topics *html.Node
	for child := nav.FirstChild; child != nil; child = child.NextSibling {
		switch {
		case htmlutil.HasClass(child, NavIndexClass):
			index = child
		case htmlutil.HasClass(child, NavTopicsClass):
			topics = child
		}
	}
	if index == nil || topics == nil {
		return
	}
	htmlutil.Detach(index)
	htmlutil.Detach(topics)
	nav.AppendChild(topics)
	nav.AppendChild(index)
}
