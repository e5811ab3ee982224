package pindef

import (
	"github.com/alecthomas/participle/v2/lexer"
	aerr "github.com/ewoutp/go-aggregate-error"
	"github.com/pkg/errors"

	"github.com/requireiot/stdpins"
)

// Definition is one validated pin of a board.
type Definition struct {
	Name     string
	Port     stdpins.Port
	Bit      uint8
	Polarity stdpins.Polarity
	// Func is the alternate function the pin was defined by, empty for pins
	// given as port, bit and polarity.
	Func string
	Pos  lexer.Position
}

// Board is a resolved definitions file.
type Board struct {
	Family stdpins.Family
	Pins   []Definition
}

// Lookup returns the pin with the given name.
func (b *Board) Lookup(name string) (Definition, bool) {
	for _, d := range b.Pins {
		if d.Name == name {
			return d, true
		}
	}
	return Definition{}, false
}

// Resolve checks every line of f against its family and returns the board.
// All problems found are reported together, each prefixed with its position.
func Resolve(f *File) (*Board, error) {
	families := f.Families()
	if len(families) == 0 {
		return nil, maskAny(ErrNoFamily)
	}
	var ae aerr.AggregateError
	for _, extra := range families[1:] {
		ae.Add(errors.Wrapf(ErrInvalidDefinition, "%s: second family line '%s'", extra.Pos, extra.Name))
	}
	family, err := stdpins.LookupFamily(families[0].Name)
	if err != nil {
		ae.Add(errors.Wrapf(err, "%s", families[0].Pos))
		return nil, ae.AsError()
	}

	board := &Board{Family: family}
	seen := map[string]lexer.Position{}
	for _, decl := range f.Pins() {
		if first, dup := seen[decl.Name]; dup {
			ae.Add(errors.Wrapf(ErrInvalidDefinition, "%s: '%s' already defined at %s", decl.Pos, decl.Name, first))
			continue
		}
		seen[decl.Name] = decl.Pos
		def, err := resolvePin(family.Table(), decl)
		if err != nil {
			ae.Add(err)
			continue
		}
		board.Pins = append(board.Pins, def)
	}
	if err := ae.AsError(); err != nil {
		return nil, err
	}
	return board, nil
}

func resolvePin(t *stdpins.Table, decl *PinDecl) (Definition, error) {
	def := Definition{Name: decl.Name, Pos: decl.Pos}
	invalid := func(format string, args ...interface{}) error {
		return errors.Wrapf(ErrInvalidDefinition, "%s: '%s': "+format, append([]interface{}{decl.Pos, decl.Name}, args...)...)
	}

	if tr := decl.Triple; tr != nil {
		port, err := stdpins.ParsePort(tr.Port)
		if err != nil {
			return def, invalid("bad port '%s'", tr.Port)
		}
		if _, ok := t.Registers(port); !ok {
			return def, invalid("%s has no port %s", t.Name(), port)
		}
		if tr.Bit > 7 {
			return def, invalid("bit %d out of range 0..7", tr.Bit)
		}
		pol, err := stdpins.ParsePolarity(tr.Polarity)
		if err != nil {
			return def, invalid("unknown polarity '%s'", tr.Polarity)
		}
		def.Port, def.Bit, def.Polarity = port, uint8(tr.Bit), pol
		return def, nil
	}

	alt := decl.Alt
	a, ok := t.AltFunction(alt.Name)
	if !ok {
		return def, invalid("%s has no alternate function %s", t.Name(), alt.Name)
	}
	def.Port, def.Bit, def.Func = a.Port, a.Bit, a.Name
	switch {
	case a.Parametric && alt.Polarity == "":
		return def, invalid("%s needs a polarity, e.g. %s(ACTIVE_HIGH)", a.Name, a.Name)
	case !a.Parametric && alt.Polarity != "":
		return def, invalid("%s takes no polarity", a.Name)
	case a.Parametric:
		pol, err := stdpins.ParsePolarity(alt.Polarity)
		if err != nil {
			return def, invalid("unknown polarity '%s'", alt.Polarity)
		}
		def.Polarity = pol
	default:
		def.Polarity = a.Polarity
	}
	return def, nil
}

// PinFor converts a definition of a board of family F into a typed pin.
func PinFor[F stdpins.Family](b *Board, name string) (stdpins.Pin[F], error) {
	var f F
	if b.Family.Table() != f.Table() {
		return stdpins.Pin[F]{}, errors.Wrapf(ErrFamilyMismatch, "board is %s, not %s", b.Family.Table().Name(), f.Table().Name())
	}
	d, ok := b.Lookup(name)
	if !ok {
		return stdpins.Pin[F]{}, errors.Wrapf(ErrInvalidDefinition, "no pin named '%s'", name)
	}
	return stdpins.NewPin[F](d.Port, d.Bit, d.Polarity)
}
