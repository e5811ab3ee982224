package stdpins

import "github.com/pkg/errors"

// NewAltPin returns the pin of an alternate function of family F. Fixed
// functions carry their table polarity. Parametric ones default to
// ActiveHigh; use WithPolarity to change that.
func NewAltPin[F Family](name string) (Pin[F], error) {
	var f F
	t := f.Table()
	a, ok := t.AltFunction(name)
	if !ok {
		return Pin[F]{}, errors.Wrapf(ErrUnknownFunction, "%s on %s", name, t.Name())
	}
	pol := a.Polarity
	if a.Parametric {
		pol = ActiveHigh
	}
	return NewPin[F](a.Port, a.Bit, pol)
}

// AltDef is like NewAltPin but panics when the family lacks the function.
func AltDef[F Family](name string) Pin[F] {
	p, err := NewAltPin[F](name)
	if err != nil {
		panic(err)
	}
	return p
}
