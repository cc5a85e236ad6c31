package view

import (
	"bytes"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/preston-bernstein/ipl-matches-service/internal/domain/matches"
)

const (
	chartWidth  = 400
	chartHeight = 400

	ColorWon   = "fecba6"
	ColorLost  = "b3d23f"
	ColorDrawn = "a44c9e"
)

// Slice is one labeled wedge of the outcomes chart.
type Slice struct {
	Label string
	Value int
	Color string
}

// Slices returns the chart wedges in fixed Won, Lost, Drawn order.
func Slices(o matches.Outcomes) []Slice {
	return []Slice{
		{Label: matches.StatusWon, Value: o.Won, Color: ColorWon},
		{Label: matches.StatusLost, Value: o.Lost, Color: ColorLost},
		{Label: matches.StatusDrawn, Value: o.Drawn, Color: ColorDrawn},
	}
}

// RenderChart writes the outcomes as an SVG donut chart.
// Zero-valued wedges are omitted; an all-zero tally writes an empty ring.
func RenderChart(w io.Writer, o matches.Outcomes) error {
	if o.Total() == 0 {
		_, err := io.WriteString(w, emptyChartSVG)
		return err
	}

	values := make([]chart.Value, 0, 3)
	for _, s := range Slices(o) {
		if s.Value <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: s.Label,
			Value: float64(s.Value),
			Style: chart.Style{
				FillColor:   drawing.ColorFromHex(s.Color),
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 2,
				FontColor:   drawing.ColorBlack,
				FontSize:    10,
			},
		})
	}

	donut := chart.DonutChart{
		Width:  chartWidth,
		Height: chartHeight,
		Values: values,
	}
	if len(values) == 1 {
		// a lone wedge is drawn as a full ring using the slice style, not the value style
		donut.SliceStyle = values[0].Style
	}

	var buf bytes.Buffer
	if err := donut.Render(chart.SVG, &buf); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

const emptyChartSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="400" height="400" viewBox="0 0 400 400">` +
	`<circle cx="200" cy="200" r="140" fill="none" stroke="#cbd5e1" stroke-width="56"/>` +
	`</svg>`
