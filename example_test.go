package primesieve_test

import (
	"context"
	"fmt"
	"os"

	"github.com/hupe1980/primesieve"
)

func Example() {
	s, err := primesieve.New(primesieve.WithLimit(30))
	if err != nil {
		panic(err)
	}

	w := primesieve.NewWriterEmitter(os.Stdout)
	if _, err := s.Run(context.Background(), w); err != nil {
		panic(err)
	}
	if err := w.Flush(); err != nil {
		panic(err)
	}
	// Output:
	// 2
	// 3
	// 5
	// 7
	// 11
	// 13
	// 17
	// 19
	// 23
	// 29
}

func ExampleSieve_All() {
	s, _ := primesieve.New(primesieve.WithLimit(70_000))

	var prev uint32
	for p := range s.All(context.Background()) {
		if p > 65536 {
			fmt.Println(prev, p)
			break
		}
		prev = p
	}
	// Output: 65521 65537
}
