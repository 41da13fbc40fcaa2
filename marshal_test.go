package fht7901

import (
	"bytes"
	"fmt"
	"math"
	"testing"
)

func TestMarshalUint16(t *testing.T) {
	cases := []struct {
		val uint16
		rep []byte
	}{
		{0x12C0, []byte{0x12, 0xC0}},
		{0, []byte{0, 0}},
		{math.MaxUint16, []byte{0xFF, 0xFF}},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("marshal16_%d", c.val), func(t *testing.T) {
			rep := marshalUint16(c.val)
			if !bytes.Equal(rep, c.rep) {
				t.Errorf("marshalUint16(%04X) == % X, want % X", c.val, rep, c.rep)
			}
		})
	}
}

func TestMarshalUint24(t *testing.T) {
	cases := []struct {
		val uint32
		rep []byte
	}{
		{0x6C728F, []byte{0x6C, 0x72, 0x8F}},
		{0, []byte{0, 0, 0}},
		{0xFFFFFF, []byte{0xFF, 0xFF, 0xFF}},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("marshal24_%d", c.val), func(t *testing.T) {
			rep := marshalUint24(c.val)
			if !bytes.Equal(rep, c.rep) {
				t.Errorf("marshalUint24(%06X) == % X, want % X", c.val, rep, c.rep)
			}
			if v := unmarshalUint24(rep); v != c.val {
				t.Errorf("unmarshalUint24(% X) == %06X, want %06X", rep, v, c.val)
			}
		})
	}
}
