package device

// Wattage is an average power draw.
type Wattage struct {
	Watts     float64 `json:"watts"`
	Kilowatts float64 `json:"kilowatts"`
}

// NewWattage builds a Wattage from watts. Negative values are not rejected
// here; see Device.Validate.
func NewWattage(watts float64) Wattage {
	return Wattage{
		Watts:     watts,
		Kilowatts: watts / 1000,
	}
}
