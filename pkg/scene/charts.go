package scene

import (
	"math"
)

// StatDatum is one resolved stat ready for charting.
type StatDatum struct {
	Name  string
	Value float64
	Max   float64
	Color string
}

// radarChart draws the stat polygon as inline SVG. Callers guarantee at
// least three data points; fewer axes do not make a polygon.
func radarChart(data []StatDatum, scale float64, color string) *Node {
	width := ChartWidth * scale
	height := ChartHeight * scale
	centerX := width / 2
	centerY := height/2 + RadarCenterDrop*scale
	radius := math.Min(width, height) / 2 * ChartRadiusRatio
	axes := len(data)

	svg := El("svg", A("width", coord(width)), A("height", coord(height)))

	var points string
	for i, stat := range data {
		angle := math.Pi*2*float64(i)/float64(axes) - math.Pi/2
		max := stat.Max
		if max <= 0 {
			max = 1
		}
		value := math.Max(0, math.Min(max, stat.Value))
		x := centerX + radius*(value/max)*math.Cos(angle)
		y := centerY + radius*(value/max)*math.Sin(angle)
		if points != "" {
			points += " "
		}
		points += coord(x) + "," + coord(y)

		edgeX := centerX + radius*math.Cos(angle)
		edgeY := centerY + radius*math.Sin(angle)
		svg.Add(El("line",
			A("x1", coord(centerX)), A("y1", coord(centerY)),
			A("x2", coord(edgeX)), A("y2", coord(edgeY)),
			A("stroke", "rgba(255, 255, 255, 0.3)"), A("stroke-width", "1"),
		))

		labelX := centerX + (radius+RadarLabelGap*scale)*math.Cos(angle)
		labelY := centerY + (radius+RadarLabelGap*scale)*math.Sin(angle)
		svg.Add(El("text",
			A("x", coord(labelX)), A("y", coord(labelY)),
			A("fill", "#fff"), A("font-size", coord(12*scale)),
			A("text-anchor", "middle"), A("dominant-baseline", "middle"),
		).Add(Text(stat.Name)))
	}

	svg.Add(El("polygon",
		A("points", points),
		A("fill", color), A("fill-opacity", "0.6"),
		A("stroke", color), A("stroke-width", "2"),
	))
	return svg
}

// doughnutChart draws stat shares as ring segments. A zero total renders
// equal shares of nothing visible, so the total is clamped to one.
func doughnutChart(data []StatDatum, scale float64) *Node {
	width := ChartWidth * scale
	height := ChartHeight * scale
	centerX := width / 2
	centerY := height / 2
	outer := math.Min(width, height) / 2 * ChartRadiusRatio
	inner := outer * DoughnutInnerRatio

	total := 0.0
	for _, stat := range data {
		total += stat.Value
	}
	if total == 0 {
		total = 1
	}

	svg := El("svg", A("width", coord(width)), A("height", coord(height)))

	startAngle := -90.0
	for _, stat := range data {
		sweep := stat.Value / total * 360
		endAngle := startAngle + sweep

		startOuterX := centerX + outer*math.Cos(startAngle*math.Pi/180)
		startOuterY := centerY + outer*math.Sin(startAngle*math.Pi/180)
		endOuterX := centerX + outer*math.Cos(endAngle*math.Pi/180)
		endOuterY := centerY + outer*math.Sin(endAngle*math.Pi/180)

		startInnerX := centerX + inner*math.Cos(endAngle*math.Pi/180)
		startInnerY := centerY + inner*math.Sin(endAngle*math.Pi/180)
		endInnerX := centerX + inner*math.Cos(startAngle*math.Pi/180)
		endInnerY := centerY + inner*math.Sin(startAngle*math.Pi/180)

		largeArc := "0"
		if sweep > 180 {
			largeArc = "1"
		}

		d := "M " + coord(startOuterX) + " " + coord(startOuterY) +
			" A " + coord(outer) + " " + coord(outer) + " 0 " + largeArc + " 1 " + coord(endOuterX) + " " + coord(endOuterY) +
			" L " + coord(startInnerX) + " " + coord(startInnerY) +
			" A " + coord(inner) + " " + coord(inner) + " 0 " + largeArc + " 0 " + coord(endInnerX) + " " + coord(endInnerY) +
			" Z"
		svg.Add(El("path", A("d", d), A("fill", stat.Color)))

		startAngle = endAngle
	}
	return svg
}

// barRow renders one labeled progress bar, shared by stats and gauges.
func barRow(name, display string, value, max float64, color string, scale float64) *Node {
	if max <= 0 {
		max = 1
	}
	ratio := math.Max(0, math.Min(1, value/max)) * 100

	row := El("div", A("class", "bar-row"))
	row.Add(El("div",
		A("style", stylef("display: flex; justify-content: space-between; font-size: %s; color: #D1D5DB;", remf(0.875*scale))),
	).Add(
		El("span").Add(Text(name)),
		El("span").Add(Text(display)),
	))
	row.Add(El("div",
		A("style", "width: 100%; background-color: rgba(0,0,0,0.3); border-radius: 9999px; height: 0.5rem;"),
	).Add(El("div",
		A("style", stylef("height: 100%%; border-radius: 9999px; width: %s%%; background-color: %s;", coord(ratio), color)),
	)))
	return row
}
