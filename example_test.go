package enfa_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/enfa"
	"github.com/aretw0/enfa/pkg/dsl"
)

// ExampleConverter_Convert removes the ε-move of A --ε--> B --a--> C.
func ExampleConverter_Convert() {
	a, err := dsl.New().
		States("A", "B", "C").
		Symbols("a").
		Start("A").
		Final("C").
		Epsilon("A", "B").
		On("B", "a", "C").
		Build()
	if err != nil {
		log.Fatal(err)
	}

	conv, err := enfa.New().Convert(context.Background(), a)
	if err != nil {
		log.Fatal(err)
	}

	for _, s := range a.States {
		fmt.Printf("%s: closure=%v a->%v\n", s, conv.Closures[s], conv.Transitions[s]["a"])
	}
	fmt.Println("finals:", conv.Finals)
	// Output:
	// A: closure=[A B] a->[C]
	// B: closure=[B] a->[C]
	// C: closure=[C] a->[]
	// finals: [C]
}
