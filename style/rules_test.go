package style

import "testing"

func TestRuleIdentity(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
		want string
	}{
		{"class rule keeps selector", ClassRule{Selector: ".box > p"}, ".box > p"},
		{"single rule", SingleRule{Class: "width-px-5", Prop: "width", Value: "5px"}, "width-px-5"},
		{"color rule", ColorRule{Class: "bg-204-0-0-100", Prop: "background-color", Color: Rgb255(204, 0, 0)}, "bg-204-0-0-100"},
		{"spacing", SpacingRule{X: 10, Y: 20}, "spacing-10-20"},
		{"padding", PaddingRule{Top: 1, Right: 2, Bottom: 3, Left: 4}, "pad-1-2-3-4"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.rule.Identity(); got != tc.want {
				t.Fatalf("Identity() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestLocationClass(t *testing.T) {
	tests := []struct {
		loc  Location
		want string
	}{
		{Above, "above"},
		{Below, "below"},
		{OnLeft, "on-left"},
		{OnRight, "on-right"},
		{Overlay, "overlay"},
	}
	for _, tc := range tests {
		if got := LocationClass(tc.loc); got != tc.want {
			t.Errorf("LocationClass(%v) = %q, want %q", tc.loc, got, tc.want)
		}
	}
}
