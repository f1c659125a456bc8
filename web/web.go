// Package web holds the calculator host page.
package web

import _ "embed"

// IndexHTML is the calculator form. It loads wasm_exec.js and
// calculator.wasm from the same origin.
//
//go:embed index.html
var IndexHTML []byte
