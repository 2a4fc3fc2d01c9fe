package validate_test

import (
	"fmt"

	"github.com/simplehardware/labyrinth/grid"
	"github.com/simplehardware/labyrinth/validate"
)

// ExampleValidate checks a two-player level where player 2 skipped form B
// and never received a finish.
func ExampleValidate() {
	b, _ := grid.Parse("##########/" +
		"##@1A1B1!1/" +
		"##      ##/" +
		"##@2A2C2  /" +
		"##########")

	res := validate.Validate(b)
	fmt.Println(res)
	// Output:
	// invalid
	// error: Player 2 has no finish position
	// error: Player 2 missing form B in sequence (has forms up to C)
}
