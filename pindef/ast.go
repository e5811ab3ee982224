package pindef

import "github.com/alecthomas/participle/v2/lexer"

// File is a parsed definitions file.
//
//	family atmega328p
//	led    = B,1,ACTIVE_HIGH
//	pwm    = OC0A(ACTIVE_LOW)
//	sda    = I2C_SDA
type File struct {
	Statements []*Statement `@@*`
}

// Statement is one line of a definitions file.
type Statement struct {
	Family *FamilyDecl `  @@`
	Pin    *PinDecl    `| @@`
}

// FamilyDecl selects the chip, by family or MCU name.
type FamilyDecl struct {
	Pos  lexer.Position
	Name string `KwFamily @Ident`
}

// PinDecl names a pin, either by port, bit and polarity or by alternate
// function.
type PinDecl struct {
	Pos    lexer.Position
	Name   string  `@Ident "="`
	Triple *Triple `( @@`
	Alt    *AltRef `| @@ )`
}

// Triple is "port,bit,polarity", e.g. B,1,ACTIVE_HIGH.
type Triple struct {
	Pos      lexer.Position
	Port     string `@Ident ","`
	Bit      int    `@Int ","`
	Polarity string `@Ident`
}

// AltRef is an alternate function, with a polarity for timer outputs and
// interrupt inputs: OC0A(ACTIVE_LOW).
type AltRef struct {
	Pos      lexer.Position
	Name     string `@Ident`
	Polarity string `( "(" @Ident ")" )?`
}

// Families returns the family declarations in file order.
func (f *File) Families() []*FamilyDecl {
	var result []*FamilyDecl
	for _, s := range f.Statements {
		if s.Family != nil {
			result = append(result, s.Family)
		}
	}
	return result
}

// Pins returns the pin declarations in file order.
func (f *File) Pins() []*PinDecl {
	var result []*PinDecl
	for _, s := range f.Statements {
		if s.Pin != nil {
			result = append(result, s.Pin)
		}
	}
	return result
}
