package editor

import (
	"github.com/muurk/breakeven/internal/device"
	"github.com/muurk/breakeven/internal/textbox"
)

// StatusKind classifies the last status message
type StatusKind int

const (
	StatusNone StatusKind = iota
	StatusInfo
	StatusError
)

// Status is the outcome of the last submit, save or load, for display.
type Status struct {
	Kind StatusKind
	Text string
}

func (e *Editor) setInfo(text string) {
	e.status = Status{Kind: StatusInfo, Text: text}
}

func (e *Editor) setError(err error) {
	e.status = Status{Kind: StatusError, Text: err.Error()}
}

// Status returns the last status message
func (e *Editor) Status() Status {
	return e.status
}

// ClearStatus drops the last status message
func (e *Editor) ClearStatus() {
	e.status = Status{}
}

// FieldView is a read-only view of one input field.
type FieldView struct {
	Field   Field
	Title   string
	Value   string
	Before  string // Text left of the cursor
	After   string // Text from the cursor on
	Cursor  int
	Focused bool

	// Box is a copy of the field's input for rendering
	Box textbox.Textbox
}

// DeviceView is a read-only view of one device and its cost line.
type DeviceView struct {
	Device device.Device
	Series [2]device.Point
}

// View is everything a renderer needs for one frame.
type View struct {
	Fields   []FieldView
	Focused  Field
	Devices  []DeviceView
	Horizon  float64
	MaxCost  float64
	Status   Status
	Revision uint64
}

// Snapshot returns a copy of the editor state for rendering.
func (e *Editor) Snapshot() View {
	v := View{
		Fields:   make([]FieldView, 0, fieldCount),
		Focused:  e.focused,
		Devices:  make([]DeviceView, 0, len(e.devices)),
		Horizon:  device.HorizonMonths,
		Status:   e.status,
		Revision: e.revision,
	}

	for _, f := range Fields() {
		box := e.boxes[f]
		before, after := box.Split()
		v.Fields = append(v.Fields, FieldView{
			Field:   f,
			Title:   f.Title(),
			Value:   box.Value(),
			Before:  before,
			After:   after,
			Cursor:  box.Cursor(),
			Focused: f == e.focused,
			Box:     *box,
		})
	}

	for _, d := range e.devices {
		series := d.Series(device.HorizonMonths)
		v.Devices = append(v.Devices, DeviceView{Device: d, Series: series})
		if series[1].Cost > v.MaxCost {
			v.MaxCost = series[1].Cost
		}
		if series[0].Cost > v.MaxCost {
			v.MaxCost = series[0].Cost
		}
	}

	return v
}
