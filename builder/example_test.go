package builder_test

import (
	"fmt"

	"github.com/katalvlaran/airgraph/builder"
)

// ExampleStar generates a hub-and-spoke network with three-letter codes.
func ExampleStar() {
	recs, err := builder.BuildRecords(
		[]builder.BuilderOption{builder.WithIATAIDs()},
		builder.Star(4),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, r := range recs {
		fmt.Println(r.Origin.Code, "->", r.Destination.Code)
	}
	// Output:
	// AAA -> AAB
	// AAA -> AAC
	// AAA -> AAD
}
