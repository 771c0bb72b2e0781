// Profiling:
// go build ./profile/fill
// go tool pprof -http=":8000" -nodefraction=0.001 ./fill cpu.pprof

package main

import (
	"github.com/pkg/profile"

	"github.com/katalvlaran/arrays/fixedarray"
)

func main() {
	rounds := 100
	size := 1 << 16
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, size)
	p.Stop()
}

func run(rounds, size int) {
	a, err := fixedarray.NewIntArray(size)
	if err != nil {
		panic(err)
	}
	var sink int64
	for r := 0; r < rounds; r++ {
		if err = a.Fill(r); err != nil {
			panic(err)
		}
		cur := a.Values()
		for v, ok := cur.Next(); ok; v, ok = cur.Next() {
			sink += int64(v)
		}
		a.Reset()
	}
	_ = sink
}
