package mwis_test

import (
	"fmt"

	"github.com/go-graphalg/treewidth/bag"
	"github.com/go-graphalg/treewidth/graph"
	"github.com/go-graphalg/treewidth/mwis"
	"github.com/go-graphalg/treewidth/ntd"
	"github.com/go-graphalg/treewidth/td"
)

func ExampleSolve() {
	g := graph.NewGraph()
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)

	d := td.NewDecomposition()
	n0 := d.AddNode(bag.New(0, 1))
	n1 := d.AddNode(bag.New(1, 2))
	d.AddEdge(n0, n1)
	d.SetRoot(n0)

	nt, err := ntd.Build(d)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	weight, _, err := mwis.Solve(g, nt, map[int]uint64{0: 2, 1: 8, 2: 5})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("weight:", weight)
	// Output:
	// weight: 8
}
