package stdpins

import "github.com/pkg/errors"

var (
	ErrInvalidPort     = errors.New("invalid port")
	IsInvalidPort      = isErrorFunc(ErrInvalidPort)
	ErrInvalidBit      = errors.New("invalid bit")
	IsInvalidBit       = isErrorFunc(ErrInvalidBit)
	ErrInvalidPolarity = errors.New("invalid polarity")
	IsInvalidPolarity  = isErrorFunc(ErrInvalidPolarity)
	ErrUnknownFamily   = errors.New("unknown chip family")
	IsUnknownFamily    = isErrorFunc(ErrUnknownFamily)
	ErrUnknownFunction = errors.New("unknown alternate function")
	IsUnknownFunction  = isErrorFunc(ErrUnknownFunction)

	maskAny = errors.WithStack
)

func isErrorFunc(typeOfError error) func(err error) bool {
	return func(err error) bool {
		return err == typeOfError || errors.Cause(err) == typeOfError
	}
}
