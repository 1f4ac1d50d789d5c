package galaxy_test

import (
	"fmt"

	"github.com/katalvlaran/galaxygen/galaxy"
)

// ExampleGenerate builds the default galaxy: one 20-node core
// cluster and six 10-node outer clusters that link 70% locally, 20% into
// the core and 10% to another outer cluster.
func ExampleGenerate() {
	spec := galaxy.Spec{
		0: {Clusters: 1, NodesPerCluster: 20, CumProb: []float64{1}},
		1: {Clusters: 6, NodesPerCluster: 10, CumProb: []float64{0.70, 0.90, 1}},
	}

	g, err := galaxy.Generate(spec, galaxy.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, lvl := range g.Levels() {
		for _, c := range g.Clusters(lvl) {
			fmt.Printf("%s nodes=%d\n", c, len(c.NodeIDs()))
		}
	}
	fmt.Println("total nodes:", g.NodeCount())
	fmt.Println("invariants:", g.CheckInvariants())

	// Output:
	// C0_LVL0 nodes=20
	// C1_LVL1 nodes=10
	// C2_LVL1 nodes=10
	// C3_LVL1 nodes=10
	// C4_LVL1 nodes=10
	// C5_LVL1 nodes=10
	// C6_LVL1 nodes=10
	// total nodes: 80
	// invariants: <nil>
}

// ExampleValidate shows a table that does not end in 1.0.
func ExampleValidate() {
	err := galaxy.Validate(galaxy.Spec{
		0: {Clusters: 2, NodesPerCluster: 5, CumProb: []float64{0.7, 0.8, 0.95}},
	})
	fmt.Println(err)

	// Output:
	// Validate: level 0: cum_prob ends in 0.95: galaxy: probability table must end in 1.0
}
