// Package editor is the core of breakeven: a small form editor that turns
// typed text into devices.
//
// # Fields and Focus
//
// The editor has five text fields, visited in a fixed cycle:
//
//	electricity rate -> initial cost -> wattage -> name -> list name -> (back to rate)
//
// FocusNext and FocusPrevious move around the cycle. Character input, cursor
// movement and deletion go to the focused field only.
//
// # Submitting
//
// Submit parses the numeric fields, validates the result and appends the
// device unless an equal device (same initial cost, wattage and rate) is
// already listed. Invalid input returns a *ValidationError and changes
// nothing. A duplicate is not an error; Submit reports OutcomeDuplicate.
//
// # Saving and Loading
//
// Save and Load use the list-name field as the name of a file in the store.
// Load replaces the whole list, and only when the saved document is valid.
//
// # Rendering
//
// Snapshot returns a View holding copies of everything a renderer draws:
// field text with cursor positions, the focused field, the devices and each
// device's two-point cost line over the 36-month horizon.
//
// # Usage Example
//
//	ed := editor.New(editor.Options{
//	    RandomizeColors: true,
//	    Store:           store.New(store.DefaultDir),
//	})
//	for _, r := range "4" {
//	    ed.EnterChar(r)
//	}
//	ed.FocusNext()
//	...
//	if _, err := ed.Submit(); err != nil {
//	    // show err inline, the fields are untouched
//	}
package editor
