// Profiling:
// go build ./profile/ndget
// go tool pprof -http=":8000" -nodefraction=0.001 ./ndget cpu.pprof

package main

import (
	"github.com/pkg/profile"

	"github.com/katalvlaran/arrays/ndarray"
)

func main() {
	rounds := 50
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds)
	p.Stop()
}

func run(rounds int) {
	shape := ndarray.Shape{64, 64, 64}
	m, err := ndarray.New[float64](shape)
	if err != nil {
		panic(err)
	}
	var sink float64
	for r := 0; r < rounds; r++ {
		for i := 0; i < shape[0]; i++ {
			for j := 0; j < shape[1]; j++ {
				for k := 0; k < shape[2]; k++ {
					if err = m.Set(float64(i*j+k), i, j, k); err != nil {
						panic(err)
					}
					v, _ := m.At(i, j, k)
					sink += v
				}
			}
		}
	}
	_ = sink
}
