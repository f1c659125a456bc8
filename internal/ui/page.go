package ui

import "sync"

// Element is the observable state of one page element.
type Element struct {
	Value    string
	Text     string
	Checked  bool
	Visible  bool
	Required bool
	Enabled  bool
	Scrolls  int
}

// Page is an in-memory Surface. It starts in the page's load state and is
// safe for concurrent use.
type Page struct {
	mu       sync.Mutex
	elements map[ElementID]*Element
}

func NewPage() *Page {
	p := &Page{elements: make(map[ElementID]*Element, len(Elements))}
	for _, id := range Elements {
		p.elements[id] = &Element{Visible: !HiddenOnLoad(id), Enabled: true}
	}
	return p
}

// Element returns a copy of the state of id.
func (p *Page) Element(id ElementID) Element {
	p.mu.Lock()
	defer p.mu.Unlock()
	return *p.get(id)
}

// get creates unknown elements lazily, visible and enabled.
func (p *Page) get(id ElementID) *Element {
	e, ok := p.elements[id]
	if !ok {
		e = &Element{Visible: true, Enabled: true}
		p.elements[id] = e
	}
	return e
}

func (p *Page) update(id ElementID, fn func(e *Element)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn(p.get(id))
}

func (p *Page) Value(id ElementID) string { return p.Element(id).Value }

func (p *Page) SetValue(id ElementID, v string) {
	p.update(id, func(e *Element) { e.Value = v })
}

func (p *Page) Checked(id ElementID) bool { return p.Element(id).Checked }

func (p *Page) SetChecked(id ElementID, checked bool) {
	p.update(id, func(e *Element) { e.Checked = checked })
}

func (p *Page) Visible(id ElementID) bool { return p.Element(id).Visible }

func (p *Page) SetVisible(id ElementID, visible bool) {
	p.update(id, func(e *Element) { e.Visible = visible })
}

func (p *Page) SetRequired(id ElementID, required bool) {
	p.update(id, func(e *Element) { e.Required = required })
}

func (p *Page) SetText(id ElementID, text string) {
	p.update(id, func(e *Element) { e.Text = text })
}

func (p *Page) SetEnabled(id ElementID, enabled bool) {
	p.update(id, func(e *Element) { e.Enabled = enabled })
}

func (p *Page) ScrollIntoView(id ElementID) {
	p.update(id, func(e *Element) { e.Scrolls++ })
}
