package noise_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlterrain/noise"
)

// ExamplePerlin2D shows construction, sampling and the capability error.
func ExamplePerlin2D() {
	o := noise.DefaultOptions()
	o.Seed = 1234
	o.Frequency = 0.01

	p, err := noise.NewPerlin2D(o)
	if err != nil {
		fmt.Println(err)
		return
	}
	v, _ := p.Sample2D(10.5, -3.7)
	fmt.Printf("%.6f\n", v)

	_, err = p.Sample3D(1, 2, 3)
	fmt.Println(errors.Is(err, noise.ErrUnsupportedDimension))
	// Output:
	// 0.235170
	// true
}
