package series_test

import (
	"testing"

	"github.com/katalvlaran/fpseq/series"
)

var sinkS series.Fixed[P]

func BenchmarkMul(b *testing.B) {
	f := mustParse[P](b, sampleTerms)
	g := mustParse[P](b, catalanTerms)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkS = f.Mul(g)
	}
}

func BenchmarkCompose(b *testing.B) {
	f := mustParse[P](b, sampleTerms)
	g := nonZeroGeometric[P]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkS, _ = f.Compose(g)
	}
}

func BenchmarkInverse(b *testing.B) {
	f := series.Atan[P]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkS, _ = f.Inverse()
	}
}

func BenchmarkEuler(b *testing.B) {
	f := mustParse[P](b, sampleTerms)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkS = f.Euler()
	}
}
