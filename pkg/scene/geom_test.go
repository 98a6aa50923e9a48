package scene

import (
	"math"
	"testing"
)

func TestIconFanOffset(t *testing.T) {
	step := MapIconWidth + MapIconPadding

	cases := []struct {
		name  string
		index int
		n     int
		scale float64
		want  float64
	}{
		{name: "single icon sits on the pin", index: 0, n: 1, scale: 1, want: 0},
		{name: "pair straddles the pin left", index: 0, n: 2, scale: 1, want: -step / 2},
		{name: "pair straddles the pin right", index: 1, n: 2, scale: 1, want: step / 2},
		{name: "trio centers the middle icon", index: 1, n: 3, scale: 1, want: 0},
		{name: "trio spreads the edges", index: 2, n: 3, scale: 1, want: step},
		{name: "scale multiplies the spread", index: 0, n: 2, scale: 0.5, want: -step / 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := IconFanOffset(tc.index, tc.n, tc.scale)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("IconFanOffset(%d, %d, %v) = %v, want %v", tc.index, tc.n, tc.scale, got, tc.want)
			}
		})
	}
}

func TestFanOffsetsAreSymmetric(t *testing.T) {
	for n := 1; n <= 5; n++ {
		sum := 0.0
		for i := 0; i < n; i++ {
			sum += IconFanOffset(i, n, 1.3)
		}
		if math.Abs(sum) > 1e-9 {
			t.Fatalf("offsets for n=%d not centered, sum %v", n, sum)
		}
	}
}

func TestNumTrimsFloatNoise(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{in: 1.5 * 0.8, want: "1.2"},
		{in: 40, want: "40"},
		{in: 0, want: "0"},
		{in: 10.125, want: "10.125"},
		{in: -3.50, want: "-3.5"},
	}
	for _, tc := range cases {
		if got := num(tc.in); got != tc.want {
			t.Errorf("num(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestGeometryConstantsComplete(t *testing.T) {
	consts := GeometryConstants()
	for _, key := range []string{
		"chartWidth", "chartHeight", "radarCenterDrop", "radarLabelGap",
		"chartRadiusRatio", "doughnutInnerRatio",
		"mapIconWidth", "mapIconPadding", "mapIconLift", "mapPinSize",
	} {
		if _, ok := consts[key]; !ok {
			t.Errorf("missing geometry constant %q", key)
		}
	}
}
