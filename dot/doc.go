// Package dot exports topology graphs as Graphviz DOT and renders them to
// SVG or PNG.
//
// ToDOT is a pure string emission with no external dependency; RenderSVG and
// RenderPNG feed the DOT text through the embedded Graphviz engine
// (goccy/go-graphviz, pure Go via wazero — no cgo, no system Graphviz
// install needed).
//
// This package is an export surface for consumers of the core; nothing in
// package graph depends on it.
package dot
