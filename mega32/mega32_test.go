package mega32

import (
	"testing"

	"github.com/requireiot/stdpins"
)

func TestPins(t *testing.T) {
	if p := OC2(stdpins.ActiveHigh); p.String() != "D,7,ACTIVE_HIGH" {
		t.Errorf("OC2 is %s", p)
	}
	r := stdpins.Resolve(Def(PortA, 2, stdpins.ActiveHigh))
	if r != (stdpins.Registers{PIN: 0x39, DDR: 0x3a, PORT: 0x3b}) {
		t.Errorf("port A registers %s", r)
	}
}
