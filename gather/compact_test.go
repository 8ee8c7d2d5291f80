package gather

import (
	"reflect"
	"testing"

	"trellis/style"
)

func TestFinalize_FilterClass(t *testing.T) {
	g := Gather([]style.Attribute{
		style.Filtered{Filter: style.Blur{Radius: 2}},
		style.Filtered{Filter: style.Grayscale{Percent: 50}},
	})
	classes, rules := g.Finalize()
	wantClasses := []string{"filter-grayscale50blur2px"}
	if !reflect.DeepEqual(classes, wantClasses) {
		t.Fatalf("classes = %v, want %v", classes, wantClasses)
	}
	wantRules := []style.Rule{
		style.SingleRule{
			Class: "filter-grayscale50blur2px",
			Prop:  "filter",
			Value: "grayscale(50%) blur(2px)",
		},
	}
	if !reflect.DeepEqual(rules, wantRules) {
		t.Fatalf("rules = %v, want %v", rules, wantRules)
	}
}

func TestFinalize_EffectOrder(t *testing.T) {
	shadow := style.Shadow{OffsetX: 1, OffsetY: 2, Blur: 3, Color: style.Rgb255(0, 0, 0)}
	g := Gather([]style.Attribute{
		style.Class{Key: "halign", Name: "align-left"},
		style.Move{X: style.Ax(5)},
		style.TextShadowed{Shadow: shadow},
		style.BoxShadowed{Shadow: shadow},
		style.Filtered{Filter: style.Sepia{Percent: 30}},
	})
	classes, _ := g.Finalize()
	want := []string{
		"filter-sepia30",
		"shadows-1px2px3px0pxrgba0001",
		"text-shadows-1px2px3pxrgba0001",
		"transform-translate3d5px0px0px",
		"align-left",
	}
	if !reflect.DeepEqual(classes, want) {
		t.Fatalf("classes = %v, want %v", classes, want)
	}
}

func TestFinalize_TransformCombined(t *testing.T) {
	g := Gather([]style.Attribute{
		style.Rotate{Z: 1, Angle: 1.2},
		style.Scale{X: style.Ax(2), Y: style.Ax(2), Z: style.Ax(1)},
		style.Move{X: style.Ax(5), Y: style.Ax(10)},
	})
	want := "scale3d(2, 2, 1) translate3d(5px, 10px, 0px) rotate3d(0, 0, 1, 1.2rad)"
	if got := g.transformValue(); got != want {
		t.Fatalf("transformValue() = %q, want %q", got, want)
	}
}

func TestFinalize_TransformComponentsSkipped(t *testing.T) {
	g := Gather([]style.Attribute{
		style.Move{Y: style.Ax(4)},
	})
	want := "translate3d(0px, 4px, 0px)"
	if got := g.transformValue(); got != want {
		t.Fatalf("transformValue() = %q, want %q", got, want)
	}
}

func TestFinalize_ContentAddressedRotation(t *testing.T) {
	attrs := []style.Attribute{style.Rotate{Z: 1, Angle: 1.2}}
	first, firstRules := Gather(attrs).Finalize()
	second, secondRules := Gather(attrs).Finalize()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("classes differ between elements: %v vs %v", first, second)
	}
	if !reflect.DeepEqual(firstRules, secondRules) {
		t.Fatalf("rules differ between elements: %v vs %v", firstRules, secondRules)
	}
	want := []string{"transform-rotate3d00112rad"}
	if !reflect.DeepEqual(first, want) {
		t.Fatalf("classes = %v, want %v", first, want)
	}
}

func TestFinalize_SynthesizedPrecedeGathered(t *testing.T) {
	g := Gather([]style.Attribute{
		style.Styled{Rule: style.SingleRule{Class: "width-px-5", Prop: "width", Value: "5px"}},
		style.Filtered{Filter: style.Blur{Radius: 2}},
	})
	classes, rules := g.Finalize()
	wantClasses := []string{"filter-blur2px", "width-px-5"}
	if !reflect.DeepEqual(classes, wantClasses) {
		t.Fatalf("classes = %v, want %v", classes, wantClasses)
	}
	// gathered rules come first, synthesized ones are appended
	if len(rules) != 2 {
		t.Fatalf("rules count = %d, want 2", len(rules))
	}
	if id := rules[0].Identity(); id != "width-px-5" {
		t.Fatalf("rules[0] identity = %q, want %q", id, "width-px-5")
	}
	if id := rules[1].Identity(); id != "filter-blur2px" {
		t.Fatalf("rules[1] identity = %q, want %q", id, "filter-blur2px")
	}
}
