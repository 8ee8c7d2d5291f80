package css

import (
	"bytes"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"

	"trellis/style"
)

// Parser reads user stylesheets into the flat model. It is deliberately
// tolerant: at-rules and anything else it does not understand are skipped
// with a debug note instead of failing the render.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a stylesheet parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css")}
}

// Parse reads CSS text into a Stylesheet, keeping qualified rules with their
// declarations in authored order. The optional source identifies what is
// being parsed for debug logging.
func (p *Parser) Parse(data []byte, source ...string) *Stylesheet {
	sheet := &Stylesheet{}

	if len(source) > 0 && len(source[0]) > 0 {
		p.log.Debug("Parsing stylesheet", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	parser := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)

	// Grouped selectors arrive one by one: every selector before the last is
	// a qualified rule, the last one begins the ruleset.
	var group []string

	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && err.Error() != "EOF" {
				p.log.Debug("Stylesheet parse error", zap.Error(err))
			}
			return sheet

		case css.BeginAtRuleGrammar:
			p.log.Debug("Skipping at-rule block", zap.String("rule", string(data)))
			p.skipAtRuleBlock(parser)

		case css.AtRuleGrammar:
			p.log.Debug("Skipping at-rule", zap.String("rule", string(data)))

		case css.QualifiedRuleGrammar:
			group = append(group, joinTokens(data, parser.Values()))

		case css.BeginRulesetGrammar:
			group = append(group, joinTokens(data, parser.Values()))
			selector := strings.Join(group, ", ")
			group = nil
			props := p.parseDeclarations(parser)
			if len(props) > 0 {
				sheet.Append(Rule{Selector: selector, Props: props})
			}
		}
	}
}

// ParseBlock parses a bare declaration block such as
// "color: red; font-weight: bold" into ordered properties.
func (p *Parser) ParseBlock(block string) []style.Prop {
	parser := css.NewParser(parse.NewInput(strings.NewReader(block)), true)

	var props []style.Prop
	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && err.Error() != "EOF" {
				p.log.Debug("Declaration block parse error", zap.Error(err))
			}
			return props
		case css.DeclarationGrammar:
			props = append(props, style.Prop{
				Name:  string(data),
				Value: tokensValue(parser.Values()),
			})
		}
	}
}

// parseDeclarations collects declarations until the end of the current
// ruleset.
func (p *Parser) parseDeclarations(parser *css.Parser) []style.Prop {
	var props []style.Prop
	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return props
		case css.DeclarationGrammar:
			props = append(props, style.Prop{
				Name:  string(data),
				Value: tokensValue(parser.Values()),
			})
		case css.CustomPropertyGrammar:
			p.log.Debug("Skipping custom property", zap.String("name", string(data)))
		}
	}
}

// skipAtRuleBlock consumes tokens until the matching end of an at-rule block.
func (p *Parser) skipAtRuleBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}

// joinTokens rebuilds source text from the leading data and the value tokens,
// collapsing whitespace runs to single spaces.
func joinTokens(data []byte, values []css.Token) string {
	var b strings.Builder
	b.Write(data)
	for _, v := range values {
		if v.TokenType == css.WhitespaceToken {
			b.WriteByte(' ')
			continue
		}
		b.Write(v.Data)
	}
	return strings.TrimSpace(b.String())
}

// tokensValue rebuilds a property value from its tokens.
func tokensValue(values []css.Token) string {
	var b strings.Builder
	for _, v := range values {
		if v.TokenType == css.WhitespaceToken {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			continue
		}
		b.Write(v.Data)
	}
	return strings.TrimSpace(b.String())
}
