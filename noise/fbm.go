package noise

import "math"

// fbm2 sums o.Octaves layers of raw, doubling frequency and scaling amplitude
// by o.Persistence each layer, and divides by the total amplitude.
func fbm2(o Options, raw func(x, y float64) float64, x, y float64) float64 {
	var total, maxAmp float64
	amplitude, freq := 1.0, o.Frequency
	for i := 0; i < o.Octaves; i++ {
		total += raw(x*freq, y*freq) * amplitude
		maxAmp += amplitude
		amplitude *= o.Persistence
		freq *= 2
	}

	return total / maxAmp
}

// fbm3 is fbm2 over three coordinates.
func fbm3(o Options, raw func(x, y, z float64) float64, x, y, z float64) float64 {
	var total, maxAmp float64
	amplitude, freq := 1.0, o.Frequency
	for i := 0; i < o.Octaves; i++ {
		total += raw(x*freq, y*freq, z*freq) * amplitude
		maxAmp += amplitude
		amplitude *= o.Persistence
		freq *= 2
	}

	return total / maxAmp
}

// fade is Perlin's quintic 6t⁵ − 15t⁴ + 10t³.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// cell splits v into its lattice index (mod 256) and fractional offset.
func cell(v float64) (int, float64) {
	f := math.Floor(v)

	return int(f) & 255, v - f
}
