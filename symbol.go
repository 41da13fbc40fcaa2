package fht7901

import (
	"strings"
)

// Symbol is one atom of the FHT-7901 OOK line code.
// Every symbol is sent as 4 chips, and its value is that chip pattern,
// most significant chip first.
type Symbol byte

const (
	Silence Symbol = 0x0 // 0000, no transmission
	Zero    Symbol = 0x8 // 1000
	One     Symbol = 0xE // 1110
)

// ChipsPerSymbol is the number of OOK chips in one symbol.
const ChipsPerSymbol = 4

func bitSymbol(b bool) Symbol {
	if b {
		return One
	}
	return Zero
}

// Chips returns the symbol's chip pattern, first chip first.
func (s Symbol) Chips() [ChipsPerSymbol]bool {
	var c [ChipsPerSymbol]bool
	for i := range c {
		c[i] = s&(0x8>>uint(i)) != 0
	}
	return c
}

func (s Symbol) String() string {
	switch s {
	case Silence:
		return "_"
	case Zero:
		return "0"
	case One:
		return "1"
	default:
		return "?"
	}
}

// Symbols is a sequence of line-code symbols.
type Symbols []Symbol

// String renders the sequence as '_', '0' and '1' characters.
func (s Symbols) String() string {
	var b strings.Builder
	for _, sym := range s {
		b.WriteString(sym.String())
	}
	return b.String()
}

// Bytes packs the symbols two per byte, earlier symbol in the high nibble.
// An odd trailing symbol is completed with silence.
func (s Symbols) Bytes() []byte {
	p := make([]byte, (len(s)+1)/2)
	for i, sym := range s {
		if i%2 == 0 {
			p[i/2] = byte(sym) << 4
		} else {
			p[i/2] |= byte(sym)
		}
	}
	return p
}
