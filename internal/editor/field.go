package editor

import "fmt"

// Field identifies one of the editor's input fields. The declaration order
// is the focus cycle order.
type Field int

const (
	FieldElectricityRate Field = iota
	FieldInitialCost
	FieldWattage
	FieldName
	FieldListName

	fieldCount = iota
)

var fieldTitles = [fieldCount]string{
	FieldElectricityRate: "Electricity Rate in kWh/$",
	FieldInitialCost:     "Upfront Cost of the Device",
	FieldWattage:         "Average Wattage of the Device",
	FieldName:            "Optional Name",
	FieldListName:        "Optional Name to Save the List Under",
}

var fieldKeys = [fieldCount]string{
	FieldElectricityRate: "electricity_rate",
	FieldInitialCost:     "initial_cost",
	FieldWattage:         "wattage",
	FieldName:            "name",
	FieldListName:        "list_name",
}

// Fields returns every field in focus order.
func Fields() []Field {
	fields := make([]Field, fieldCount)
	for i := range fields {
		fields[i] = Field(i)
	}
	return fields
}

// Next returns the field after f, wrapping to the first.
func (f Field) Next() Field {
	return Field((int(f) + 1) % fieldCount)
}

// Previous returns the field before f, wrapping to the last.
func (f Field) Previous() Field {
	return Field((int(f) + fieldCount - 1) % fieldCount)
}

// Valid reports whether f is one of the declared fields
func (f Field) Valid() bool {
	return f >= 0 && int(f) < fieldCount
}

// Title returns the label shown above the field
func (f Field) Title() string {
	if !f.Valid() {
		return f.String()
	}
	return fieldTitles[f]
}

// String returns a stable identifier for logs and errors
func (f Field) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldKeys[f]
}
