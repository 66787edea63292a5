package highlight

import (
	"fmt"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/dshills/hilite/internal/section"
	"github.com/dshills/hilite/internal/theme"
)

// Chroma tokenizes lines with a chroma lexer and styles the tokens
// through a theme. Tokens whose scope resolves to the default style
// produce no section.
type Chroma struct {
	lexer chroma.Lexer
	theme *theme.Theme
}

// NewChroma creates a highlighter for the named language. Unknown
// languages fall back to chroma's plaintext lexer.
func NewChroma(language string, th *theme.Theme) *Chroma {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return &Chroma{lexer: chroma.Coalesce(lexer), theme: th}
}

// HighlightLine implements Liner.
func (c *Chroma) HighlightLine(text string, lineOffset int) (*section.Store, error) {
	it, err := c.lexer.Tokenise(nil, text)
	if err != nil {
		return nil, fmt.Errorf("tokenise line at %d: %w", lineOffset, err)
	}

	st := section.NewStore()
	off := lineOffset
	for tok := it(); tok != chroma.EOF; tok = it() {
		n := len(tok.Value)
		if scope := scopeFor(tok.Type); scope != "" && n > 0 {
			if sty := c.theme.StyleFor(scope); !sty.IsDefault() {
				st.Append(section.Section{Offset: off, Length: n, Style: sty})
			}
		}
		off += n
	}
	return st, nil
}

// scopeFor maps a chroma token type to the dotted scope names the
// themes key on. Unmapped types return "" and stay unstyled.
func scopeFor(t chroma.TokenType) string {
	switch {
	case t == chroma.LiteralStringEscape:
		return "string.escape"
	case t == chroma.KeywordType:
		return "type"
	case t == chroma.KeywordDeclaration:
		return "keyword.declaration"
	case t == chroma.NameFunction:
		return "function"
	case t == chroma.NameClass:
		return "type"
	case t == chroma.NameConstant:
		return "constant"
	case t == chroma.NameBuiltin:
		return "function"
	case t == chroma.Error:
		return "invalid"
	case t.InCategory(chroma.Comment):
		return "comment"
	case t.InCategory(chroma.Keyword):
		return "keyword"
	case t.InSubCategory(chroma.LiteralString):
		return "string"
	case t.InSubCategory(chroma.LiteralNumber):
		return "number"
	case t.InCategory(chroma.Operator):
		return "operator"
	case t.InCategory(chroma.Name):
		return "variable"
	default:
		return ""
	}
}
