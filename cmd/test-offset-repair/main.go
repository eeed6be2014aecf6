// Test program to demonstrate annotation offset repair
// This shows the substring search and trim fallbacks fixing broken model output
package main

import (
	"fmt"
	"strings"

	"github.com/argumint/argumint/internal/extract"
	"github.com/argumint/argumint/internal/stats"
	"github.com/argumint/argumint/internal/validate"
)

func main() {
	fmt.Println("=== Annotation Offset Repair Test ===")
	fmt.Println()

	essayText := "Homework teaches time management. " +
		"Yet it often crowds out family life. " +
		"Schools should cap daily homework."

	// A response with the usual failure modes: exact offsets, shifted
	// offsets, padded span text, and a fabricated span.
	response := "T1\tMajorClaim 71 104\tSchools should cap daily homework\n" +
		"T2\tClaim 0 32\tHomework teaches time management\n" +
		"T3\tPremise 40 75\tit often crowds out family life\n" +
		"T4\tPremise 0 20\t  Homework teaches  \n" +
		"T5\tClaim 10 25\tThe dog ate my homework\n" +
		"A1\tStance T2 For\n" +
		"R1\tsupports Arg1:T3 Arg2:T1\n"

	fmt.Println("Essay:")
	fmt.Printf("  %s\n", essayText)
	fmt.Println()

	lines := extract.Response(response)
	fixed := validate.New(essayText).FixLines(lines)

	fmt.Println("Repair results:")
	fmt.Println(strings.Repeat("-", 60))
	for i, line := range lines {
		before := line.Render()
		after := fixed[i].Render()
		if before == after {
			fmt.Printf("  ✓ %s\n", after)
		} else {
			fmt.Printf("  ⚠ %s\n", before)
			fmt.Printf("    -> %s\n", after)
		}
	}
	fmt.Println(strings.Repeat("-", 60))

	s := stats.Compute(fixed)
	fmt.Println()
	fmt.Printf("Counted: MajorClaim=%d Claim=%d Premise=%d For=%d Against=%d supports=%d attacks=%d\n",
		s.MajorClaim, s.Claim, s.Premise, s.StanceFor, s.StanceAgainst, s.Supports, s.Attacks)

	fmt.Println()
	fmt.Println("=== Test Complete ===")
	fmt.Println()
	fmt.Println("Note: spans that cannot be found in the essay are left untouched.")
	fmt.Println("Downstream consumers decide what to do with unrepairable lines.")
}
