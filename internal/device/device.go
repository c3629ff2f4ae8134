package device

import (
	"fmt"
	"math"
)

// HorizonMonths is the break-even window used to compare devices.
const HorizonMonths = 36.0

// JSON keys of the financial fields. FieldError.Field uses the same names.
const (
	KeyInitialCost     = "initial_cost"
	KeyAverageWattage  = "average_wattage"
	KeyElectricityRate = "electricity_rate"
)

// Device is one appliance being compared.
type Device struct {
	// InitialCost is the purchase price in currency units
	InitialCost float64 `json:"initial_cost"`

	// AverageWattage is the average power draw
	AverageWattage Wattage `json:"average_wattage"`

	// ElectricityRate is kWh per currency unit (a divisor, not a tariff)
	ElectricityRate float64 `json:"electricity_rate"`

	// Color is used by the table and chart only
	Color RGB `json:"color"`

	// Name is an optional label
	Name string `json:"name"`
}

// Point is one (months, cost) sample of a cost line.
type Point struct {
	Months float64
	Cost   float64
}

// FieldError reports a financial field that cannot produce a finite cost.
type FieldError struct {
	Field   string  // One of KeyInitialCost, KeyAverageWattage, KeyElectricityRate
	Value   float64 // Offending value
	Message string  // Human-readable reason
}

// Error implements the error interface
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s (got %v)", e.Field, e.Message, e.Value)
}

// Equal reports whether two devices have the same economics.
// Name and Color are ignored.
func (d Device) Equal(other Device) bool {
	return d.InitialCost == other.InitialCost &&
		d.AverageWattage == other.AverageWattage &&
		d.ElectricityRate == other.ElectricityRate
}

// Cost returns the running cost over t, excluding the purchase price.
// A zero rate yields +Inf or NaN; Validate rejects such devices.
func (d Device) Cost(t Timespan) float64 {
	return d.AverageWattage.Kilowatts * t.Hours / d.ElectricityRate
}

// TotalCost returns the running cost over t plus the purchase price.
func (d Device) TotalCost(t Timespan) float64 {
	return d.Cost(t) + d.InitialCost
}

// Series returns the two points of the device's cost line from month 0 to
// the given horizon.
func (d Device) Series(horizonMonths float64) [2]Point {
	return [2]Point{
		{Months: 0, Cost: d.InitialCost},
		{Months: horizonMonths, Cost: d.TotalCost(FromMonths(horizonMonths))},
	}
}

// Validate checks that the financial fields are finite and non-negative,
// that the electricity rate is strictly positive, and that the total cost
// over HorizonMonths is finite.
func (d Device) Validate() error {
	if !isFinite(d.InitialCost) {
		return &FieldError{Field: KeyInitialCost, Value: d.InitialCost, Message: "must be a finite number"}
	}
	if d.InitialCost < 0 {
		return &FieldError{Field: KeyInitialCost, Value: d.InitialCost, Message: "must not be negative"}
	}

	if !isFinite(d.AverageWattage.Watts) {
		return &FieldError{Field: KeyAverageWattage, Value: d.AverageWattage.Watts, Message: "must be a finite number"}
	}
	if d.AverageWattage.Watts < 0 {
		return &FieldError{Field: KeyAverageWattage, Value: d.AverageWattage.Watts, Message: "must not be negative"}
	}
	if d.AverageWattage.Kilowatts != d.AverageWattage.Watts/1000 {
		return &FieldError{Field: KeyAverageWattage, Value: d.AverageWattage.Kilowatts, Message: "kilowatts do not match watts"}
	}

	if !isFinite(d.ElectricityRate) {
		return &FieldError{Field: KeyElectricityRate, Value: d.ElectricityRate, Message: "must be a finite number"}
	}
	if d.ElectricityRate <= 0 {
		return &FieldError{Field: KeyElectricityRate, Value: d.ElectricityRate, Message: "must be greater than zero"}
	}
	if total := d.TotalCost(FromMonths(HorizonMonths)); !isFinite(total) {
		return &FieldError{Field: KeyElectricityRate, Value: d.ElectricityRate, Message: "gives a total cost too large to compute"}
	}

	return nil
}

// String returns a short human-readable description of the device
func (d Device) String() string {
	name := d.Name
	if name == "" {
		name = "(unnamed)"
	}
	return fmt.Sprintf("%s: %v upfront, %v W at %v kWh/$", name, d.InitialCost, d.AverageWattage.Watts, d.ElectricityRate)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
