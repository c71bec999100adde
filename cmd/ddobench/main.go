// Command ddobench runs the ddo branch-and-bound solver against a handful
// of small worked instances and prints the result of each.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gitrdm/ddbnb/examples/knapsack"
	"github.com/gitrdm/ddbnb/pkg/ddo"
)

func main() {
	fmt.Println("=== ddo branch-and-bound benchmarks ===")
	fmt.Println()

	smallKnapsack()
	narrowWidthKnapsack()
}

func smallKnapsack() {
	fmt.Println("1. Knapsack, capacity=50, 3 items:")

	problem := &knapsack.Problem{
		Capacity: 50,
		Profit:   []int{60, 100, 120},
		Weight:   []int{10, 20, 30},
	}
	runAndReport(problem, ddo.NewFixedWidth[knapsack.State](10))
	fmt.Println()
}

func narrowWidthKnapsack() {
	fmt.Println("2. Knapsack, capacity=50, 7 items, width=2:")

	problem := &knapsack.Problem{
		Capacity: 50,
		Profit:   []int{60, 210, 12, 5, 100, 120, 110},
		Weight:   []int{10, 45, 20, 4, 20, 30, 50},
	}
	runAndReport(problem, ddo.NewFixedWidth[knapsack.State](2))
	fmt.Println()
}

func runAndReport(problem *knapsack.Problem, width ddo.WidthHeuristic[knapsack.State]) {
	relax := knapsack.Relaxation{Problem: problem}
	ranking := knapsack.Ranking{}

	solver := ddo.NewSolver[knapsack.State](problem, relax, ranking, width,
		ddo.WithCutoff[knapsack.State](ddo.NewTimeBudget(15*time.Second)),
	)

	start := time.Now()
	completion, solution, value := solver.Maximize(context.Background())
	elapsed := time.Since(start)

	fmt.Printf("   duration:   %v\n", elapsed)
	fmt.Printf("   objective:  %d\n", value)
	fmt.Printf("   exact:      %v\n", completion.IsExact)
	fmt.Printf("   decisions:  %v\n", solution)
	fmt.Printf("   %v\n", solver.Stats())
}
