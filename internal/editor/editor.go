package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muurk/breakeven/internal/device"
	"github.com/muurk/breakeven/internal/logging"
	"github.com/muurk/breakeven/internal/store"
	"github.com/muurk/breakeven/internal/textbox"
)

// Outcome describes what a successful Submit did.
type Outcome int

const (
	// OutcomeNone is returned with an error; nothing happened
	OutcomeNone Outcome = iota
	// OutcomeAdded means the device was appended to the list
	OutcomeAdded
	// OutcomeDuplicate means an equal device already existed; nothing changed
	OutcomeDuplicate
)

// String returns a human-readable name for the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeAdded:
		return "added"
	case OutcomeDuplicate:
		return "duplicate"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Options configures a new Editor.
type Options struct {
	// RandomizeColors selects random device colors instead of gray.
	// Ignored when Colors is set.
	RandomizeColors bool

	// Colors overrides the color source (tests pass a seeded source)
	Colors device.ColorSource

	// Store persists lists; nil disables Save and Load
	Store *store.Store

	// ClearOnSubmit empties the device fields after a device is added
	ClearOnSubmit bool
}

// Editor owns the device list and the form fields. It is not safe for
// concurrent use; the UI drives it from a single goroutine.
type Editor struct {
	devices []device.Device
	boxes   [fieldCount]*textbox.Textbox
	focused Field
	exit    bool

	colors        device.ColorSource
	store         *store.Store
	clearOnSubmit bool

	status   Status
	revision uint64
}

// New creates an Editor with empty fields, an empty device list and focus
// on the first field.
func New(opts Options) *Editor {
	colors := opts.Colors
	if colors == nil {
		colors = device.NewColorSource(opts.RandomizeColors)
	}

	e := &Editor{
		focused:       FieldElectricityRate,
		colors:        colors,
		store:         opts.Store,
		clearOnSubmit: opts.ClearOnSubmit,
	}
	for i := range e.boxes {
		e.boxes[i] = textbox.New()
	}
	return e
}

// Focused returns the field receiving keyboard input
func (e *Editor) Focused() Field {
	return e.focused
}

// FocusNext moves focus to the next field, wrapping around.
func (e *Editor) FocusNext() {
	e.focused = e.focused.Next()
}

// FocusPrevious moves focus to the previous field, wrapping around.
func (e *Editor) FocusPrevious() {
	e.focused = e.focused.Previous()
}

// Value returns the text of a field
func (e *Editor) Value(f Field) string {
	if !f.Valid() {
		return ""
	}
	return e.boxes[f].Value()
}

// Cursor returns the cursor position of a field in runes
func (e *Editor) Cursor(f Field) int {
	if !f.Valid() {
		return 0
	}
	return e.boxes[f].Cursor()
}

// SetValue replaces the text of a field, placing the cursor at the end.
func (e *Editor) SetValue(f Field, s string) {
	if !f.Valid() {
		return
	}
	e.boxes[f].SetValue(s)
}

// EnterChar inserts r into the focused field.
func (e *Editor) EnterChar(r rune) {
	e.active().EnterChar(r)
}

// DeleteChar removes the rune before the cursor in the focused field.
func (e *Editor) DeleteChar() {
	e.active().DeleteChar()
}

// MoveCursorLeft moves the focused field's cursor left.
func (e *Editor) MoveCursorLeft() {
	e.active().MoveCursorLeft()
}

// MoveCursorRight moves the focused field's cursor right.
func (e *Editor) MoveCursorRight() {
	e.active().MoveCursorRight()
}

func (e *Editor) active() *textbox.Textbox {
	return e.boxes[e.focused]
}

// Devices returns a copy of the device list in insertion order.
func (e *Editor) Devices() []device.Device {
	out := make([]device.Device, len(e.devices))
	copy(out, e.devices)
	return out
}

// Len returns the number of devices in the list
func (e *Editor) Len() int {
	return len(e.devices)
}

// Revision increases every time the device list changes. Renderers use it
// to invalidate cached chart data.
func (e *Editor) Revision() uint64 {
	return e.revision
}

// Exit marks the editor as finished. The run loop stops once Exited is true.
func (e *Editor) Exit() {
	e.exit = true
}

// Exited reports whether Exit was called
func (e *Editor) Exited() bool {
	return e.exit
}

// Submit builds a device from the form fields and appends it unless an equal
// device already exists. On error nothing changes: the list, the fields and
// the color source are left as they were.
func (e *Editor) Submit() (Outcome, error) {
	d, err := e.candidate()
	if err != nil {
		e.setError(err)
		return OutcomeNone, err
	}

	d.Color = e.colors.Next()

	if e.contains(d) {
		logging.LogDuplicateIgnored(d.Name, d.InitialCost, d.AverageWattage.Watts, d.ElectricityRate)
		e.setInfo("Device already in the list")
		return OutcomeDuplicate, nil
	}

	e.devices = append(e.devices, d)
	e.revision++
	logging.LogDeviceAdded(d.Name, d.InitialCost, d.AverageWattage.Watts, d.ElectricityRate, len(e.devices))

	if e.clearOnSubmit {
		for _, f := range []Field{FieldElectricityRate, FieldInitialCost, FieldWattage, FieldName} {
			e.boxes[f].Reset()
		}
	}

	e.setInfo(fmt.Sprintf("Added %s", displayName(d, len(e.devices))))
	return OutcomeAdded, nil
}

// candidate parses the form into a validated device without a color.
func (e *Editor) candidate() (device.Device, error) {
	initialCost, err := e.parseField(FieldInitialCost)
	if err != nil {
		return device.Device{}, err
	}

	watts, err := e.parseField(FieldWattage)
	if err != nil {
		return device.Device{}, err
	}

	rate, err := e.parseField(FieldElectricityRate)
	if err != nil {
		return device.Device{}, err
	}

	d := device.Device{
		InitialCost:     initialCost,
		AverageWattage:  device.NewWattage(watts),
		ElectricityRate: rate,
		Name:            e.boxes[FieldName].Value(),
	}

	if err := d.Validate(); err != nil {
		return device.Device{}, e.fromDeviceError(err)
	}

	return d, nil
}

func (e *Editor) parseField(f Field) (float64, error) {
	text := e.boxes[f].Value()
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, &ValidationError{Field: f, Value: text, Message: "a number is required"}
	}

	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, &ValidationError{Field: f, Value: text, Message: fmt.Sprintf("%q is not a number", text), Err: err}
	}
	return v, nil
}

// fromDeviceError maps a device.FieldError back to the form field.
func (e *Editor) fromDeviceError(err error) error {
	fieldErr, ok := err.(*device.FieldError)
	if !ok {
		return err
	}

	var f Field
	switch fieldErr.Field {
	case device.KeyInitialCost:
		f = FieldInitialCost
	case device.KeyAverageWattage:
		f = FieldWattage
	default:
		f = FieldElectricityRate
	}

	return &ValidationError{
		Field:   f,
		Value:   e.boxes[f].Value(),
		Message: fieldErr.Message,
		Err:     err,
	}
}

func (e *Editor) contains(d device.Device) bool {
	for _, existing := range e.devices {
		if existing.Equal(d) {
			return true
		}
	}
	return false
}

// Save writes the device list under the name in the list-name field and
// returns the number of devices written.
func (e *Editor) Save() (int, error) {
	if e.store == nil {
		e.setError(ErrNoStore)
		return 0, ErrNoStore
	}

	name := e.boxes[FieldListName].Value()
	path, _ := e.store.Path(name)

	err := e.store.Save(name, e.devices)
	logging.LogSave(name, path, len(e.devices), err)
	if err != nil {
		e.setError(err)
		return 0, err
	}

	e.setInfo(fmt.Sprintf("Saved %d device(s) as %q", len(e.devices), name))
	return len(e.devices), nil
}

// Load replaces the device list with the list saved under the name in the
// list-name field and returns the number of devices loaded. On error the
// current list is kept. Duplicates in the saved document are collapsed,
// keeping the first occurrence.
func (e *Editor) Load() (int, error) {
	if e.store == nil {
		e.setError(ErrNoStore)
		return 0, ErrNoStore
	}

	name := e.boxes[FieldListName].Value()
	path, _ := e.store.Path(name)

	loaded, err := e.store.Load(name)
	if err != nil {
		logging.LogLoad(name, path, 0, err)
		e.setError(err)
		return 0, err
	}

	devices := make([]device.Device, 0, len(loaded))
	for _, d := range loaded {
		duplicate := false
		for _, kept := range devices {
			if kept.Equal(d) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			devices = append(devices, d)
		}
	}

	e.devices = devices
	e.revision++
	logging.LogLoad(name, path, len(devices), nil)

	e.setInfo(fmt.Sprintf("Loaded %d device(s) from %q", len(devices), name))
	return len(devices), nil
}

// SavedLists returns the names of lists in the store
func (e *Editor) SavedLists() ([]string, error) {
	if e.store == nil {
		return nil, ErrNoStore
	}
	return e.store.List()
}

func displayName(d device.Device, position int) string {
	if d.Name != "" {
		return fmt.Sprintf("%q", d.Name)
	}
	return fmt.Sprintf("device #%d", position)
}
