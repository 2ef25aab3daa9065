// Command dice rolls 3d6 repeatedly and prints the distribution as a histogram
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lixenwraith/mars-base-one/random"
)

const (
	dice  = 3
	sides = 6
)

var (
	rollsFlag = flag.Int("rolls", 1000, "Number of 3d6 rolls")
	seedFlag  = flag.Uint64("seed", 0, "Seed (0 = random)")
)

func main() {
	flag.Parse()

	rng := random.New()
	if *seedFlag != 0 {
		rng = random.Seeded(*seedFlag)
	}
	printHistogram(os.Stdout, roll(rng, *rollsFlag), *rollsFlag)
}

// roll returns counts indexed by total minus the minimum total
func roll(rng *random.Generator, n int) []int {
	counts := make([]int, dice*sides-dice+1)
	for i := 0; i < n; i++ {
		total := 0
		for d := 0; d < dice; d++ {
			total += rng.RangeInclusive(1, sides)
		}
		counts[total-dice]++
	}
	return counts
}

func printHistogram(w io.Writer, counts []int, n int) {
	fmt.Fprintf(w, "%dd%d Roll Distribution (out of %d rolls):\n", dice, sides, n)
	for i, c := range counts {
		fmt.Fprintf(w, "%2d : %s\n", i+dice, strings.Repeat("#", c))
	}
}
