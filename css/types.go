// Package css holds the flat stylesheet model shared by generated rules and
// user-supplied stylesheets, and renders it to text.
package css

import (
	"fmt"
	"io"
	"strings"

	"trellis/style"
)

// Rule is one flat stylesheet rule: a selector plus its declarations in
// authored order.
type Rule struct {
	Selector string
	Props    []style.Prop
}

// Stylesheet is an ordered list of rules.
type Stylesheet struct {
	Rules []Rule
}

// Append adds rules to the end of the sheet.
func (s *Stylesheet) Append(rules ...Rule) {
	s.Rules = append(s.Rules, rules...)
}

// Merge appends every rule of other to the sheet.
func (s *Stylesheet) Merge(other *Stylesheet) {
	if other == nil {
		return
	}
	s.Rules = append(s.Rules, other.Rules...)
}

// Empty reports whether the sheet has nothing to render.
func (s *Stylesheet) Empty() bool {
	return s == nil || len(s.Rules) == 0
}

// WriteTo renders the sheet. Each rule is written as the selector, an opening
// brace, one indented "prop: value;" line per declaration and a closing
// brace; rules are separated by a blank line.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, r := range s.Rules {
		if i > 0 {
			n, err := io.WriteString(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
		n, err := writeRule(w, r)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func writeRule(w io.Writer, r Rule) (int64, error) {
	var total int64
	n, err := fmt.Fprintf(w, "%s {\n", r.Selector)
	total += int64(n)
	if err != nil {
		return total, err
	}
	for _, p := range r.Props {
		n, err = fmt.Fprintf(w, "  %s: %s;\n", p.Name, p.Value)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	n, err = io.WriteString(w, "}\n")
	total += int64(n)
	return total, err
}

// String renders the sheet to a string.
func (s *Stylesheet) String() string {
	var b strings.Builder
	_, _ = s.WriteTo(&b)
	return b.String()
}
