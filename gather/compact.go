package gather

import (
	"strings"

	"trellis/style"
)

// Finalize consumes the pending transform and effect state, returning the
// complete class list and the element's full rule contribution. Effects are
// processed in fixed order: filter, box shadows, text shadows, combined
// transform. Every synthesized class is derived from the rendered value, so
// elements with equal effect values share one class and one stylesheet entry.
// Synthesized classes precede the gathered ones in the returned list.
func (g *Gathered) Finalize() ([]string, []style.Rule) {
	var (
		synthClasses []string
		synthRules   []style.Rule
	)
	synthesize := func(kind, prop, value string) {
		class := kind + "-" + style.ClassName(value)
		synthClasses = append(synthClasses, class)
		synthRules = append(synthRules, style.SingleRule{Class: class, Prop: prop, Value: value})
	}

	if len(g.filter) > 0 {
		synthesize("filter", "filter", g.filter)
	}
	if len(g.boxShadow) > 0 {
		synthesize("shadows", "box-shadow", g.boxShadow)
	}
	if len(g.textShadow) > 0 {
		synthesize("text-shadows", "text-shadow", g.textShadow)
	}
	if value := g.transformValue(); len(value) > 0 {
		synthesize("transform", "transform", value)
	}

	classes := append(synthClasses, g.Classes...)
	rules := append(g.Rules, synthRules...)
	return classes, rules
}

// transformValue renders the combined transform: scale, then translation,
// then rotation, space separated. Components never touched by an attribute
// are skipped entirely, axes left unset inside a present component default
// to zero.
func (g *Gathered) transformValue() string {
	var parts []string
	if g.scaled {
		parts = append(parts, "scale3d("+
			style.FormatFloat(g.scale.x.Value)+", "+
			style.FormatFloat(g.scale.y.Value)+", "+
			style.FormatFloat(g.scale.z.Value)+")")
	}
	if g.moved {
		parts = append(parts, "translate3d("+
			style.Pixels(g.translate.x.Value)+", "+
			style.Pixels(g.translate.y.Value)+", "+
			style.Pixels(g.translate.z.Value)+")")
	}
	if len(g.rotation) > 0 {
		parts = append(parts, g.rotation)
	}
	return strings.Join(parts, " ")
}
