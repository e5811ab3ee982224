package pindef

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer tokenizes pin definition files.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `(#|//)[^\n]*`},
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	// keywords before identifiers
	{Name: "KwFamily", Pattern: `(?i)\bfamily\b`},

	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[=,()]`},
})
