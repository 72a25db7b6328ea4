package twistedtube_test

import (
	"fmt"

	"github.com/soypat/twistedtube"
)

func ExampleNew() {
	// A 34mm three-lobed tube with 3mm deep lobes and a 6.5mm pitch.
	tube, err := twistedtube.New(0.034, 3, 0.003, 0.0065)
	if err != nil {
		panic(err)
	}
	props := tube.Properties(1000)
	fmt.Println(tube)
	fmt.Printf("Area: %.2f mm²\n", props.Area*1e6)
	fmt.Printf("Equivalent diameter: %.2f mm\n", props.EquivalentDiameter*1e3)
	fmt.Printf("Helical length factor: %.2f\n", tube.HelicalLengthFactor())
	// Output:
	// Tube(outer_diameter=34.0mm, num_lobes=3, lobe_height=3.0mm, spiral_pitch=6.5mm)
	// Area: 758.45 mm²
	// Equivalent diameter: 30.51 mm
	// Helical length factor: 16.46
}
