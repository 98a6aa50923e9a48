package scene

import (
	"fmt"
	"strconv"
	"strings"
)

// Geometry constants shared by the Go renderers and the exported runtime.
// The export template injects these so both implementations draw from one
// set of numbers; change them here, not in the runtime script.
const (
	// ChartWidth and ChartHeight bound the radar/doughnut canvas before
	// scaling.
	ChartWidth  = 256.0
	ChartHeight = 200.0

	// RadarCenterDrop lowers the radar center to leave room for top labels.
	RadarCenterDrop = 10.0
	// RadarLabelGap pushes axis labels past the outer radius.
	RadarLabelGap = 15.0
	// ChartRadiusRatio maps the half-canvas to the outer chart radius.
	ChartRadiusRatio = 0.8
	// DoughnutInnerRatio maps the outer radius to the hole radius.
	DoughnutInnerRatio = 0.6

	// MapIconWidth is the unscaled character icon diameter on map pins.
	MapIconWidth = 40.0
	// MapIconPadding separates fanned-out icons sharing a location.
	MapIconPadding = 4.0
	// MapIconLift raises icons above the pin they decorate.
	MapIconLift = 10.0
	// MapPinSize is the unscaled pin diameter.
	MapPinSize = 16.0
)

// GeometryConstants is the serializable form injected into exported
// documents.
func GeometryConstants() map[string]float64 {
	return map[string]float64{
		"chartWidth":         ChartWidth,
		"chartHeight":        ChartHeight,
		"radarCenterDrop":    RadarCenterDrop,
		"radarLabelGap":      RadarLabelGap,
		"chartRadiusRatio":   ChartRadiusRatio,
		"doughnutInnerRatio": DoughnutInnerRatio,
		"mapIconWidth":       MapIconWidth,
		"mapIconPadding":     MapIconPadding,
		"mapIconLift":        MapIconLift,
		"mapPinSize":         MapPinSize,
	}
}

// IconFanOffset centers n icons around a pin: even spacing, symmetric about
// the pin, stacked above it. index runs 0..n-1.
func IconFanOffset(index, n int, scale float64) float64 {
	width := (MapIconWidth + MapIconPadding) * scale
	return (float64(index) - float64(n-1)/2) * width
}

// num formats a scaled dimension, trimming the float noise multiplication
// introduces so styles stay readable.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}

// coord formats an SVG coordinate with enough precision to be stable across
// renders without dragging float noise into the output.
func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func pct(v float64) string {
	return num(v) + "%"
}

func px(v float64) string {
	return num(v) + "px"
}

func remf(v float64) string {
	return num(v) + "rem"
}

func stylef(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
