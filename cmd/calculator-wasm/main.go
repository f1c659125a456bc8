//go:build js && wasm

// Command calculator-wasm binds the calculator controller to the page it is
// loaded into. Quotes go to the origin that served the page.
package main

import (
	"context"
	"syscall/js"

	"go.uber.org/zap"

	"slas-calculator/internal/calculator"
	"slas-calculator/internal/logging"
	"slas-calculator/internal/quoteclient"
	"slas-calculator/internal/ui"
)

const formID = "calculatorForm"

func main() {
	logger, err := logging.New("info")
	if err != nil {
		logger = zap.NewNop()
	}

	origin := js.Global().Get("location").Get("origin").String()
	client := quoteclient.New(origin, quoteclient.WithLogger(logger))
	surface := newDOMSurface()
	ctrl := calculator.New(surface, client, calculator.WithLogger(logger))

	ctx := context.Background()
	listen(surface.el(ui.ARLCheckbox), "change", func(js.Value) { ctrl.ToggleRiskLevel() })
	listen(surface.el(ui.CCFCheckbox), "change", func(js.Value) { ctrl.ToggleCCFPercentage() })

	form := surface.doc.Call("getElementById", formID)
	listen(form, "submit", func(ev js.Value) {
		// must happen before the callback returns or the page navigates
		ev.Call("preventDefault")
		// the fetch transport blocks, which is not allowed on the event loop
		go func() { _, _ = ctrl.Submit(ctx, nil) }()
	})
	// the browser resets field values after the event; dependents follow
	listen(form, "reset", func(js.Value) {
		var after js.Func
		after = js.FuncOf(func(js.Value, []js.Value) any {
			after.Release()
			ctrl.Reset()
			return nil
		})
		js.Global().Call("setTimeout", after, 0)
	})

	logger.Info("calculator ready", zap.String("quote_url", client.URL()))
	select {}
}

func listen(target js.Value, event string, fn func(ev js.Value)) {
	target.Call("addEventListener", event, js.FuncOf(func(_ js.Value, args []js.Value) any {
		fn(args[0])
		return nil
	}))
}
