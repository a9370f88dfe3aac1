package scene

import (
	"reflect"
	"testing"

	"github.com/matzehuels/uithings/pkg/geom"
)

func TestGridLines(t *testing.T) {
	tests := []struct {
		name                 string
		lo, hi, origin, step float64
		want                 []float64
	}{
		{"origin at edge", 0, 120, 0, 50, []float64{0, 50, 100}},
		{"origin inside", 0, 120, 60, 50, []float64{60, 110, 10}},
		{"zero spacing", 0, 100, 0, 0, nil},
		{"origin above range", 0, 100, 150, 50, []float64{100, 50, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GridLines(tt.lo, tt.hi, tt.origin, tt.step)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GridLines() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGridLabels(t *testing.T) {
	g := DefaultGrid()
	g.Origin = geom.Pt(100, 100)
	labels := g.Labels(geom.R(0, 0, 200, 200))

	var texts []string
	for _, l := range labels {
		texts = append(texts, l.Text)
	}
	want := []string{"50", "100", "-50", "-100", "50", "100", "-50", "-100", "0"}
	if !reflect.DeepEqual(texts, want) {
		t.Errorf("Labels() texts = %v, want %v", texts, want)
	}
	if last := labels[len(labels)-1]; last.Anchor != geom.Pt(104, 104) {
		t.Errorf("origin label anchor = %+v", last.Anchor)
	}
}
