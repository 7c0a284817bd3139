// Profiling:
// go build ./profile/view
// go tool pprof -http=":8000" -nodefraction=0.001 ./view cpu.prof

package main

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/aoikite/hakoniwa"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

func main() {
	// CPU Profiling
	f, _ := os.Create("cpu.prof")
	_ = pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	rounds := 50
	iters := 1000
	entities := 100000
	run(rounds, iters, entities)

	// Memory Profiling
	memFile, _ := os.Create("mem.prof")
	defer memFile.Close()
	runtime.GC() // Trigger garbage collection
	_ = pprof.WriteHeapProfile(memFile)
}

func run(rounds, iters, numEntities int) {
	for i := 0; i < rounds; i++ {
		w := hakoniwa.NewWorld(numEntities)
		if _, err := hakoniwa.RegisterComponent[comp1](w); err != nil {
			panic(err)
		}
		if _, err := hakoniwa.RegisterComponent[comp2](w); err != nil {
			panic(err)
		}
		ents, err := w.CreateEntities(numEntities)
		if err != nil {
			panic(err)
		}
		for _, e := range ents {
			_ = hakoniwa.AddComponent(w, e, comp1{V: 1, W: 2})
			_ = hakoniwa.AddComponent(w, e, comp2{V: 3, W: 4})
		}

		view, err := hakoniwa.NewView2[comp1, comp2](w)
		if err != nil {
			panic(err)
		}
		for j := 0; j < iters; j++ {
			view.Reset()
			for view.Next() {
				c1, c2 := view.Get()
				c1.V += c2.V
				c1.W += c2.W
			}
		}
	}
}
