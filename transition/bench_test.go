package transition_test

import (
	"testing"

	"github.com/katalvlaran/combograph/punch"
	"github.com/katalvlaran/combograph/transition"
)

// BenchmarkInsert measures a single counter increment.
func BenchmarkInsert(b *testing.B) {
	g := transition.New()
	kinds := punch.Kinds()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Insert(kinds[i%len(kinds)], kinds[(i+1)%len(kinds)])
	}
}

// BenchmarkNew measures building the complete graph.
func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = transition.New()
	}
}
