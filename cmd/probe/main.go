package main

import (
	"fmt"
	"log"

	"github.com/ecc1/fht7901"
)

func main() {
	r := fht7901.Open()
	if r.Error() != nil {
		log.Fatal(r.Error())
	}
	defer r.Close()
	r.Reset()
	v := r.Version()
	fmt.Printf("version: %02X\n", v)
	if v != fht7901.ChipVersion {
		log.Printf("unexpected chip version %02X, want %02X", v, fht7901.ChipVersion)
	}
	fmt.Printf("old frequency: %d\n", r.Frequency())
	r.Init(fht7901.DefaultFrequency, fht7901.DefaultPower)
	if r.Error() != nil {
		log.Fatal(r.Error())
	}
	fmt.Printf("mode: %v\n", r.Mode())
	fmt.Printf("new frequency: %d\n", r.Frequency())
}
