package pindef

import "github.com/pkg/errors"

var (
	ErrSyntax            = errors.New("syntax error")
	IsSyntax             = isErrorFunc(ErrSyntax)
	ErrInvalidDefinition = errors.New("invalid definition")
	IsInvalidDefinition  = isErrorFunc(ErrInvalidDefinition)
	ErrNoFamily          = errors.New("no family line")
	IsNoFamily           = isErrorFunc(ErrNoFamily)
	ErrFamilyMismatch    = errors.New("family mismatch")
	IsFamilyMismatch     = isErrorFunc(ErrFamilyMismatch)

	maskAny = errors.WithStack
)

func isErrorFunc(typeOfError error) func(err error) bool {
	return func(err error) bool {
		return err == typeOfError || errors.Cause(err) == typeOfError
	}
}
