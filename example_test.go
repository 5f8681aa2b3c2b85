package cbess_test

import (
	"fmt"
	"log"

	"github.com/prajithravisankar/cbess"
)

func Example() {
	sealed, err := cbess.Seal("1. e4 e5 2. Nf3", []byte("HELLO"),
		cbess.NewCarrier(50, 50), cbess.NewCarrier(50, 50))
	if err != nil {
		log.Fatal(err)
	}

	opened, err := cbess.Open(sealed.CipherImage, sealed.KeyImage)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(opened.Moves)
	fmt.Println(opened.Text())
	fmt.Println(opened.Fingerprint)
	// Output:
	// e4 e5 Nf3
	// HELLO
	// ed91f07ead8e6a49
}

func ExampleDeriveKey() {
	key := cbess.DeriveKey("e4 e5 Nf3")
	fmt.Printf("%x\n", key[:8])
	fmt.Println(key)
	// Output:
	// 6ced3bc19f636ffd
	// cbess.Key(ed91f07ead8e6a49)
}

func ExampleFormatMoves() {
	moves := cbess.SplitMoves("1. e4 e5 2. Nf3 Nc6 3. Bb5")
	fmt.Println(cbess.FormatMoves(moves, 0))
	// Output:
	// 1. e4 e5
	// 2. Nf3 Nc6
	// 3. Bb5
}

func ExampleEmbed() {
	carrier, err := cbess.Embed(cbess.NewCarrier(10, 10), []byte("Qh5"))
	if err != nil {
		log.Fatal(err)
	}

	payload, err := cbess.Extract(carrier)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(string(payload), cbess.Capacity(carrier))
	// Output: Qh5 300
}
