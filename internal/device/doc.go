// Package device provides the cost model for comparing electrical devices.
//
// A Device combines a purchase price, an average power draw and a local
// electricity rate. The rate is expressed in kWh per currency unit, so it is
// a divisor: running cost over a timespan is
//
//	kilowatts * hours / rate
//
// and total cost adds the purchase price on top.
//
// # Value Types
//
//   - Wattage: watts and the derived kilowatts
//   - Timespan: hours with derived days, months and years (fixed 24 h/day,
//     720 h/month and 8760 h/year, not calendar accurate)
//   - RGB: cosmetic display color, persisted as a [r, g, b] array
//
// # Equality
//
// Two devices are equal when their financial fields (initial cost, wattage
// and electricity rate) match. Name and color are labels only and do not
// take part in equality:
//
//	a := device.Device{InitialCost: 100, AverageWattage: device.NewWattage(60), ElectricityRate: 4, Name: "lamp"}
//	b := a
//	b.Name = "other lamp"
//	a.Equal(b) // true
//
// # Colors
//
// ColorSource isolates the only source of non-determinism in the program.
// Use NewRandomColors with a fixed seed in tests, or FixedColor to disable
// randomization entirely.
package device
