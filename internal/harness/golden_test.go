package harness

import "testing"

func TestGolden_SetInvert(t *testing.T) {
	RunGolden(t, "testdata/scenarios/set_invert.yaml")
}

func TestGolden_AdditiveStroke(t *testing.T) {
	RunGolden(t, "testdata/scenarios/additive_stroke.yaml")
}

func TestGolden_SequenceMedian(t *testing.T) {
	RunGolden(t, "testdata/scenarios/sequence_median.yaml")
}

func TestGolden_BrushWalk(t *testing.T) {
	RunGolden(t, "testdata/scenarios/brush_walk.yaml")
}
