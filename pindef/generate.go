package pindef

import (
	"bytes"
	"go/format"
	"strconv"
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

const modulePath = "github.com/requireiot/stdpins"

var sourceTemplate = template.Must(template.New("pins").Parse(`// Code generated by "stdpins gen" from {{.Source}}. DO NOT EDIT.

package {{.Package}}

import (
{{- if .UsesPolarity}}
	"{{.Module}}"
{{- end}}
	"{{.Module}}/{{.FamilyPkg}}"
)

// Pins of the {{.Family}} board.
var (
{{- range .Pins}}
	{{.Ident}} = {{.Expr}}
{{- end}}
)
`))

type genPin struct {
	Ident string
	Expr  string
}

// Generate writes Go source declaring every pin of b as a variable of
// package pkg, using the family symbol package. The source argument is
// named in the header comment.
func Generate(b *Board, pkg, source string) ([]byte, error) {
	t := b.Family.Table()
	famPkg := strings.ToLower(t.Name())
	data := struct {
		Source, Package, Module, FamilyPkg, Family string
		UsesPolarity                               bool
		Pins                                       []genPin
	}{
		Source:    source,
		Package:   pkg,
		Module:    modulePath,
		FamilyPkg: famPkg,
		Family:    t.Name(),
	}

	idents := map[string]string{}
	for _, d := range b.Pins {
		id := goName(d.Name)
		if other, dup := idents[id]; dup {
			return nil, errors.Wrapf(ErrInvalidDefinition, "%s: '%s' and '%s' both become %s", d.Pos, other, d.Name, id)
		}
		idents[id] = d.Name

		var expr string
		switch a, _ := t.AltFunction(d.Func); {
		case d.Func == "":
			expr = famPkg + ".Def(" + famPkg + ".Port" + d.Port.String() + ", " + strconv.Itoa(int(d.Bit)) + ", " + d.Polarity.GoString() + ")"
			data.UsesPolarity = true
		case a.Parametric:
			expr = famPkg + "." + altSymbol(d.Func) + "(" + d.Polarity.GoString() + ")"
			data.UsesPolarity = true
		default:
			expr = famPkg + "." + altSymbol(d.Func)
		}
		data.Pins = append(data.Pins, genPin{Ident: id, Expr: expr})
	}

	var buf bytes.Buffer
	if err := sourceTemplate.Execute(&buf, data); err != nil {
		return nil, maskAny(err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, maskAny(err)
	}
	return src, nil
}

// altSymbol is the Go name of an alternate function: UART_RX -> UARTRX.
func altSymbol(name string) string {
	return strings.ToUpper(strings.ReplaceAll(name, "_", ""))
}

// goName turns a pin name into an exported identifier: led_red -> LedRed.
func goName(name string) string {
	var sb strings.Builder
	upper := true
	for _, r := range name {
		if r == '_' {
			upper = true
			continue
		}
		if upper {
			sb.WriteString(strings.ToUpper(string(r)))
			upper = false
		} else {
			sb.WriteRune(r)
		}
	}
	if sb.Len() == 0 {
		return "Pin"
	}
	return sb.String()
}
