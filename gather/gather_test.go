package gather

import (
	"reflect"
	"testing"

	"trellis/style"
)

func TestGather_Empty(t *testing.T) {
	g := Gather(nil)
	classes, rules := g.Finalize()
	if len(classes) != 0 {
		t.Fatalf("classes = %v, want none", classes)
	}
	if len(rules) != 0 {
		t.Fatalf("rules = %v, want none", rules)
	}
	if len(g.Attrs) != 0 || len(g.Nearbys) != 0 || g.Link != nil {
		t.Fatalf("empty attribute list produced state: %+v", g)
	}
}

func TestGather_FirstClassKeyWins(t *testing.T) {
	g := Gather([]style.Attribute{
		style.Class{Key: "halign", Name: "align-left"},
		style.Class{Key: "halign", Name: "align-right"},
		style.Class{Key: "valign", Name: "align-top"},
	})
	want := []string{"align-left", "align-top"}
	if !reflect.DeepEqual(g.Classes, want) {
		t.Fatalf("Classes = %v, want %v", g.Classes, want)
	}
}

func TestGather_StyledAlwaysContributes(t *testing.T) {
	r := style.SingleRule{Class: "width-px-5", Prop: "width", Value: "5px"}
	g := Gather([]style.Attribute{
		style.Styled{Rule: r},
		style.Styled{Rule: r},
	})
	want := []string{"width-px-5", "width-px-5"}
	if !reflect.DeepEqual(g.Classes, want) {
		t.Fatalf("Classes = %v, want %v", g.Classes, want)
	}
	if len(g.Rules) != 2 {
		t.Fatalf("Rules count = %d, want 2", len(g.Rules))
	}
}

func TestGather_NoAttrAndRawAttr(t *testing.T) {
	g := Gather([]style.Attribute{
		style.NoAttr{},
		style.RawAttr{Key: "id", Value: "intro"},
		style.RawAttr{Key: "title", Value: "Intro"},
	})
	want := []style.RawAttr{
		{Key: "id", Value: "intro"},
		{Key: "title", Value: "Intro"},
	}
	if !reflect.DeepEqual(g.Attrs, want) {
		t.Fatalf("Attrs = %v, want %v", g.Attrs, want)
	}
}

func TestGather_Link(t *testing.T) {
	g := Gather([]style.Attribute{
		style.Link{Kind: style.LinkNewTab, URL: "https://example.com/"},
	})
	if g.Link == nil {
		t.Fatal("Link not recorded")
	}
	if g.Link.Kind != style.LinkNewTab || g.Link.URL != "https://example.com/" {
		t.Fatalf("Link = %+v, want new-tab https://example.com/", *g.Link)
	}
}

func TestGather_NearbyOrder(t *testing.T) {
	g := Gather([]style.Attribute{
		style.Nearby{Location: style.Above, Child: "first"},
		style.Nearby{Location: style.Overlay, Child: "second"},
	})
	if len(g.Nearbys) != 2 {
		t.Fatalf("Nearbys count = %d, want 2", len(g.Nearbys))
	}
	if g.Nearbys[0].Location != style.Above || g.Nearbys[1].Location != style.Overlay {
		t.Fatalf("Nearbys out of order: %+v", g.Nearbys)
	}
}

func TestGather_MoveAxisFill(t *testing.T) {
	g := Gather([]style.Attribute{
		style.Move{X: style.Ax(5)},
		style.Move{X: style.Ax(9), Y: style.Ax(3)},
	})
	if !g.moved {
		t.Fatal("translation not recorded")
	}
	if g.translate.x.Value != 5 {
		t.Fatalf("x = %v, want first value 5", g.translate.x.Value)
	}
	if !g.translate.y.Set || g.translate.y.Value != 3 {
		t.Fatalf("y = %+v, want later fill 3", g.translate.y)
	}
	if g.translate.z.Set {
		t.Fatalf("z = %+v, want unset", g.translate.z)
	}
}

func TestGather_ScaleAxisFill(t *testing.T) {
	g := Gather([]style.Attribute{
		style.Scale{X: style.Ax(2), Y: style.Ax(2)},
		style.Scale{Y: style.Ax(7), Z: style.Ax(1)},
	})
	if g.scale.x.Value != 2 || g.scale.y.Value != 2 || g.scale.z.Value != 1 {
		t.Fatalf("scale = %+v, want (2, 2, 1)", g.scale)
	}
}

func TestGather_RotateReplacesWholesale(t *testing.T) {
	g := Gather([]style.Attribute{
		style.Rotate{Z: 1, Angle: 0.5},
		style.Rotate{X: 1, Angle: 1.2},
	})
	want := "rotate3d(1, 0, 0, 1.2rad)"
	if g.rotation != want {
		t.Fatalf("rotation = %q, want %q", g.rotation, want)
	}
}

func TestGather_FilterNewestFirst(t *testing.T) {
	g := Gather([]style.Attribute{
		style.Filtered{Filter: style.Blur{Radius: 2}},
		style.Filtered{Filter: style.Grayscale{Percent: 50}},
	})
	want := "grayscale(50%) blur(2px)"
	if g.filter != want {
		t.Fatalf("filter = %q, want %q", g.filter, want)
	}
}

func TestGather_ShadowsNewestFirst(t *testing.T) {
	near := style.Shadow{OffsetX: 1, OffsetY: 1, Blur: 2, Color: style.Rgb255(0, 0, 0)}
	far := style.Shadow{OffsetX: 4, OffsetY: 4, Blur: 8, Size: 1, Color: style.Rgb255(0, 0, 0)}
	g := Gather([]style.Attribute{
		style.BoxShadowed{Shadow: near},
		style.BoxShadowed{Shadow: far},
		style.TextShadowed{Shadow: near},
	})
	wantBox := "4px 4px 8px 1px rgba(0,0,0,1), 1px 1px 2px 0px rgba(0,0,0,1)"
	if g.boxShadow != wantBox {
		t.Fatalf("boxShadow = %q, want %q", g.boxShadow, wantBox)
	}
	wantText := "1px 1px 2px rgba(0,0,0,1)"
	if g.textShadow != wantText {
		t.Fatalf("textShadow = %q, want %q", g.textShadow, wantText)
	}
}
