// Package tui implements the full-screen terminal interface for breakeven.
//
// The interface is a single Bubble Tea screen. The left 30% of the terminal
// holds the five input fields, a status line and the device table; the
// right 70% holds the cost chart.
//
// # Architecture
//
// All editing state lives in an *editor.Editor. The Model translates key
// presses into editor operations and renders editor.Snapshot() on every
// frame, so the chart and table are always drawn from the current list.
//
//	ed := editor.New(editor.Options{
//	    RandomizeColors: true,
//	    Store:           store.New(store.DefaultDir),
//	})
//	if err := tui.Run(ed); err != nil {
//	    log.Fatal(err)
//	}
//
// # Key Bindings
//
//   - ↓/tab and ↑/shift+tab: move between fields
//   - ←/→: move the cursor
//   - backspace: delete before the cursor
//   - enter: add the device described by the form
//   - ctrl+s and ctrl+l: save or load the list named in the last field
//   - esc or ctrl+c: quit
//
// # Chart
//
// Each device is a straight line from its upfront cost at month 0 to its
// total cost at month 36, drawn with braille dots in the device's color.
// Rasterized lines are kept between frames and dropped whenever the device
// list changes.
package tui
