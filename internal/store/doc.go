// Package store persists device lists as JSON documents.
//
// Each list is one file inside a fixed directory (DefaultDir, "saves"),
// named after the list. The document is a JSON array of device records:
//
//	[
//	  {
//	    "initial_cost": 100,
//	    "average_wattage": {"watts": 60, "kilowatts": 0.06},
//	    "electricity_rate": 4,
//	    "color": [20, 20, 20],
//	    "name": "lamp"
//	  }
//	]
//
// # Writes
//
// Save writes to a temporary file in the same directory and renames it over
// the destination, so a failed save never leaves a truncated list behind.
//
// # Reads
//
// Load decodes strictly: unknown fields, trailing data and records that fail
// device.Device.Validate reject the whole document. Callers only replace
// their in-memory list when Load returns without error.
//
// # Names
//
// List names come straight from user input and are checked before any
// filesystem access. Names that are empty, start with ".", or contain path
// separators or control characters are rejected with ErrTypeInvalidName.
package store
