// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/aoikite/hakoniwa"
	"github.com/pkg/profile"
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
	rounds := 50
	iters := 1000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
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

		for j := 0; j < iters; j++ {
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
			for view.Next() {
				c1, c2 := view.Get()
				c1.V += c2.V
				c1.W += c2.W
			}
			// No identifier reuse, so reclaim the ID space per pass.
			w.Clear()
		}
	}
}
