package pindef

import (
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/pkg/errors"
)

var parser = participle.MustBuild[File](
	participle.Lexer(Lexer),
	participle.Elide("Comment", "Whitespace"),
	participle.UseLookahead(2),
)

// Parse parses a definitions file from r. The filename is only used in
// positions.
func Parse(filename string, r io.Reader) (*File, error) {
	f, err := parser.Parse(filename, r)
	if err != nil {
		return nil, errors.Wrap(ErrSyntax, err.Error())
	}
	return f, nil
}

// ParseString parses a definitions file held in a string.
func ParseString(filename, input string) (*File, error) {
	f, err := parser.ParseString(filename, input)
	if err != nil {
		return nil, errors.Wrap(ErrSyntax, err.Error())
	}
	return f, nil
}

// ParseFile reads and parses the definitions file at path.
func ParseFile(path string) (*File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, maskAny(err)
	}
	defer file.Close()
	return Parse(path, file)
}
