package phc_test

import (
	"fmt"

	"github.com/phcformat/phc/pkg/phc"
)

func ExampleNew() {
	v, err := phc.New("65536")
	if err != nil {
		panic(err)
	}

	fmt.Println(v, v.Len())
	// Output: 65536 5
}

func ExampleValue_Decimal() {
	v, err := phc.New("4294967295")
	if err != nil {
		panic(err)
	}

	n, err := v.Decimal()
	if err != nil {
		panic(err)
	}

	fmt.Println(n)
	// Output: 4294967295
}

func ExampleValue_Decimal_leadingZero() {
	v, err := phc.New("01")
	if err != nil {
		panic(err)
	}

	_, err = v.Decimal()
	fmt.Println(err)
	// Output: phc: invalid character '0'
}

func ExampleValue_B64Decode() {
	v, err := phc.New("cGhjIHdvcmtz")
	if err != nil {
		panic(err)
	}

	buf := make([]byte, 16)
	raw, err := v.B64Decode(buf)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%s\n", raw)
	// Output: phc works
}
