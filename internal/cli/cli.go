// Package cli implements the topology command-line interface.
//
// The CLI is a thin consumer of the core packages: it builds topologies from
// flag-described shapes, reports their derived properties, composes Cartesian
// products, and exports DOT/SVG/PNG renderings. It is built on cobra with
// verbose logging via charmbracelet/log.
//
// # Commands
//
//   - build:   construct a topology and report vertices, edges, diameter
//   - product: compose two topologies and report the product's properties
//   - render:  construct a topology and write it as DOT, SVG, or PNG
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli
