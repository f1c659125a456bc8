//go:build js && wasm

package main

import (
	"syscall/js"

	"slas-calculator/internal/ui"
)

// domSurface drives the real page through the DOM.
type domSurface struct {
	doc js.Value
}

func newDOMSurface() *domSurface {
	return &domSurface{doc: js.Global().Get("document")}
}

func (d *domSurface) el(id ui.ElementID) js.Value {
	return d.doc.Call("getElementById", string(id))
}

func (d *domSurface) Value(id ui.ElementID) string {
	return d.el(id).Get("value").String()
}

func (d *domSurface) SetValue(id ui.ElementID, v string) {
	d.el(id).Set("value", v)
}

func (d *domSurface) Checked(id ui.ElementID) bool {
	return d.el(id).Get("checked").Bool()
}

func (d *domSurface) SetChecked(id ui.ElementID, checked bool) {
	d.el(id).Set("checked", checked)
}

func (d *domSurface) Visible(id ui.ElementID) bool {
	return d.el(id).Get("style").Get("display").String() != "none"
}

// groups and result rows are flex containers
func displayFor(id ui.ElementID) string {
	switch id {
	case ui.RiskLevelGroup, ui.CCFPercentageGroup, ui.ARLRow, ui.CCFRow:
		return "flex"
	}
	return "block"
}

func (d *domSurface) SetVisible(id ui.ElementID, visible bool) {
	display := "none"
	if visible {
		display = displayFor(id)
	}
	d.el(id).Get("style").Set("display", display)
}

func (d *domSurface) SetRequired(id ui.ElementID, required bool) {
	d.el(id).Set("required", required)
}

func (d *domSurface) SetText(id ui.ElementID, text string) {
	d.el(id).Set("textContent", text)
}

func (d *domSurface) SetEnabled(id ui.ElementID, enabled bool) {
	d.el(id).Set("disabled", !enabled)
}

func (d *domSurface) ScrollIntoView(id ui.ElementID) {
	opts := js.Global().Get("Object").New()
	opts.Set("behavior", "smooth")
	opts.Set("block", "nearest")
	d.el(id).Call("scrollIntoView", opts)
}
