package instance_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/instance"
)

// ExampleReadCSV parses a labelled 4-cycle and evaluates one coloring.
func ExampleReadCSV() {
	const file = "A,B,C,D\n0,1,0,1\n1,0,1,0\n0,1,0,1\n1,0,1,0\n"

	t, err := instance.ReadCSV(strings.NewReader(file))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	f, _ := coloring.Fitness(t.Instance, coloring.Coloring{0, 1, 0, 1})
	fmt.Println(t.Labels, t.Instance.EdgeCount(), f)
	// Output: [A B C D] 4 0
}

// ExampleCubicPlanar writes a small cubic planar instance in problem-file form.
func ExampleCubicPlanar() {
	g, err := instance.CubicPlanar(4, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(instance.FileName(g.Order()))
	_ = instance.WriteCSV(os.Stdout, g, true)
	// Output:
	// size4_instance.csv
	// 0,1,2,3
	// 0,1,1,1
	// 1,0,1,1
	// 1,1,0,1
	// 1,1,1,0
}
