package context_test

import (
	"fmt"

	"github.com/db47h/atof/context"
)

// Example demonstrates parsing the same input under different presets.
func Example() {
	input := "1_000.5"

	if _, err := context.Strict.ParseFloat(input); err != nil {
		fmt.Println("strict:", err)
	}

	v, err := context.Go.ParseFloat(input)
	if err != nil {
		fmt.Println("go:", err)
	} else {
		fmt.Println("go:", v)
	}

	loc := context.Locale()
	v, err = loc.ParseFloat("1_000,5")
	if err != nil {
		fmt.Println("locale:", err)
	} else {
		fmt.Println("locale:", v)
	}
	//
	// Output:
	// strict: atof.ParseFloat: parsing "1_000.5": unexpected '_': atof: bad argument
	// go: 1000.5
	// locale: 1000.5
}
