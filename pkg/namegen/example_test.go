package namegen_test

import (
	"fmt"

	"github.com/dmitrymomot/ideabloom/pkg/namegen"
)

func ExampleGenerator_Generate() {
	gen := namegen.New(nil, namegen.PickerFunc(func(int) int { return 0 }))

	names := gen.Generate(namegen.Request{
		Industry: "finance",
		Theme:    "blog",
		Style:    namegen.Professional,
	})
	fmt.Println(len(names), names[0])
	// Output: 8 Wealth Blog
}

func ExampleWordBank_IndustryWords() {
	bank := namegen.DefaultWordBank()
	fmt.Println(bank.IndustryWords("Health Tech"))
	fmt.Println(bank.IndustryWords("pet grooming"))
	// Output:
	// [Vital Well Health Care Life Tech Byte Code Dev Digital]
	// [Pet Grooming]
}
