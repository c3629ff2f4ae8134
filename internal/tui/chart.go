package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	lru "github.com/hashicorp/golang-lru"

	"github.com/muurk/breakeven/internal/device"
	"github.com/muurk/breakeven/internal/editor"
)

// LabelSteps is the number of intervals between axis labels; each axis
// shows LabelSteps+1 labels.
const LabelSteps = 8

// lineCacheSize bounds the number of rasterized lines kept between frames.
const lineCacheSize = 256

// SpacedLabels returns steps+1 evenly spaced values from 0 to max.
func SpacedLabels(max float64, steps int) []float64 {
	if steps <= 0 {
		return []float64{0}
	}
	labels := make([]float64, 0, steps+1)
	fraction := max / float64(steps)
	for i := 0; i <= steps; i++ {
		labels = append(labels, float64(i)*fraction)
	}
	return labels
}

// dot is one braille sub-cell: 2 per cell horizontally, 4 vertically.
type dot struct {
	x, y int
}

// lineKey identifies a rasterized line. Devices with the same economics
// share an entry.
type lineKey struct {
	from, to         device.Point
	horizon, maxCost float64
	width, height    int
}

// chartRenderer draws cost lines as braille plots. Rasterized lines are
// kept in an LRU cache between frames and dropped when the device list
// changes.
type chartRenderer struct {
	lines    *lru.Cache
	revision uint64
}

func newChartRenderer() *chartRenderer {
	cache, err := lru.New(lineCacheSize)
	if err != nil {
		// Only fails for a non-positive size
		panic(err)
	}
	return &chartRenderer{lines: cache}
}

// Render draws the chart box for a snapshot at the given outer size.
func (c *chartRenderer) Render(v editor.View, width, height int) string {
	if v.Revision != c.revision {
		c.lines.Purge()
		c.revision = v.Revision
	}
	return RenderTitledBox("Chart", c.plot(v, width-2, height-2), width, height, BorderColor)
}

func (c *chartRenderer) plot(v editor.View, width, height int) string {
	maxCost := v.MaxCost
	yLabels := formatLabels(SpacedLabels(maxCost, LabelSteps))
	xLabels := formatLabels(SpacedLabels(v.Horizon, LabelSteps))

	labelWidth := 0
	for _, l := range yLabels {
		if len(l) > labelWidth {
			labelWidth = len(l)
		}
	}

	// Title row, plot rows, axis row, label row
	plotHeight := height - 3
	plotWidth := width - labelWidth - 1
	if plotHeight < 2 || plotWidth < 4 {
		return AxisLabelStyle.Render("terminal too small for chart")
	}

	scale := maxCost
	if scale <= 0 {
		scale = 1
	}

	cv := newCanvas(plotWidth, plotHeight)
	for _, d := range v.Devices {
		key := lineKey{
			from:    d.Series[0],
			to:      d.Series[1],
			horizon: v.Horizon,
			maxCost: scale,
			width:   plotWidth,
			height:  plotHeight,
		}
		cv.draw(c.line(key), d.Device.Color)
	}

	// Y labels by row, top label wins on overlap
	rowLabels := make(map[int]string, len(yLabels))
	for i, l := range yLabels {
		row := plotHeight - 1 - int(math.Round(float64(i)*float64(plotHeight-1)/LabelSteps))
		rowLabels[row] = l
	}

	var b strings.Builder

	title := AxisTitleStyle.Render("Cost")
	months := AxisTitleStyle.Render("Months")
	gap := width - lipgloss.Width(title) - lipgloss.Width(months)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(title + strings.Repeat(" ", gap) + months)
	b.WriteString("\n")

	for y := 0; y < plotHeight; y++ {
		label := fmt.Sprintf("%*s", labelWidth, rowLabels[y])
		b.WriteString(AxisLabelStyle.Render(label + "│"))
		b.WriteString(cv.row(y))
		b.WriteString("\n")
	}

	b.WriteString(AxisLabelStyle.Render(strings.Repeat(" ", labelWidth) + "└" + strings.Repeat("─", plotWidth)))
	b.WriteString("\n")
	b.WriteString(AxisLabelStyle.Render(strings.Repeat(" ", labelWidth+1) + placeLabels(xLabels, plotWidth)))

	return b.String()
}

// line returns the dots of a device's cost line, rasterizing on a miss.
func (c *chartRenderer) line(key lineKey) []dot {
	if cached, ok := c.lines.Get(key); ok {
		return cached.([]dot)
	}
	dots := rasterize(key)
	c.lines.Add(key, dots)
	return dots
}

// rasterize maps the two series points into dot space and joins them with
// a Bresenham line.
func rasterize(k lineKey) []dot {
	maxX := 2*k.width - 1
	maxY := 4*k.height - 1

	toDot := func(p device.Point) dot {
		x := int(math.Round(p.Months / k.horizon * float64(maxX)))
		y := maxY - int(math.Round(p.Cost/k.maxCost*float64(maxY)))
		return dot{x: clampInt(x, 0, maxX), y: clampInt(y, 0, maxY)}
	}

	from, to := toDot(k.from), toDot(k.to)

	dx := absInt(to.x - from.x)
	dy := -absInt(to.y - from.y)
	sx, sy := 1, 1
	if from.x > to.x {
		sx = -1
	}
	if from.y > to.y {
		sy = -1
	}

	var dots []dot
	x, y := from.x, from.y
	errTerm := dx + dy
	for {
		dots = append(dots, dot{x: x, y: y})
		if x == to.x && y == to.y {
			break
		}
		e2 := 2 * errTerm
		if e2 >= dy {
			errTerm += dy
			x += sx
		}
		if e2 <= dx {
			errTerm += dx
			y += sy
		}
	}
	return dots
}

// brailleBits maps a dot's position inside a cell to its braille bit.
var brailleBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

type canvas struct {
	width, height int
	bits          [][]uint8
	colors        [][]device.RGB
}

func newCanvas(width, height int) *canvas {
	c := &canvas{
		width:  width,
		height: height,
		bits:   make([][]uint8, height),
		colors: make([][]device.RGB, height),
	}
	for y := range c.bits {
		c.bits[y] = make([]uint8, width)
		c.colors[y] = make([]device.RGB, width)
	}
	return c
}

// draw sets dots in the given color; later devices paint over earlier ones.
func (c *canvas) draw(dots []dot, color device.RGB) {
	for _, d := range dots {
		cx, cy := d.x/2, d.y/4
		if cx >= c.width || cy >= c.height {
			continue
		}
		c.bits[cy][cx] |= brailleBits[d.y%4][d.x%2]
		c.colors[cy][cx] = color
	}
}

// row renders one line of cells, batching runs of the same color.
func (c *canvas) row(y int) string {
	var b strings.Builder
	var run strings.Builder
	var runColor device.RGB
	runLit := false

	flush := func() {
		if run.Len() == 0 {
			return
		}
		if runLit {
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(runColor.Hex())).Render(run.String()))
		} else {
			b.WriteString(run.String())
		}
		run.Reset()
	}

	for x := 0; x < c.width; x++ {
		bits := c.bits[y][x]
		lit := bits != 0
		if lit != runLit || (lit && c.colors[y][x] != runColor) {
			flush()
			runLit = lit
			runColor = c.colors[y][x]
		}
		if lit {
			run.WriteRune(rune(0x2800 + int(bits)))
		} else {
			run.WriteByte(' ')
		}
	}
	flush()

	return b.String()
}

func formatLabels(values []float64) []string {
	labels := make([]string, len(values))
	for i, v := range values {
		labels[i] = fmt.Sprintf("%.0f", v)
	}
	return labels
}

// placeLabels spreads labels across width columns, skipping any that would
// overlap the previous one.
func placeLabels(labels []string, width int) string {
	line := []rune(strings.Repeat(" ", width))
	next := 0
	for i, l := range labels {
		col := 0
		if len(labels) > 1 {
			col = int(math.Round(float64(i) * float64(width-1) / float64(len(labels)-1)))
		}
		if col+len(l) > width {
			col = width - len(l)
		}
		if col < next || col < 0 {
			continue
		}
		copy(line[col:], []rune(l))
		next = col + len(l) + 1
	}
	return string(line)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
