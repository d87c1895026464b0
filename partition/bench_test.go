package partition_test

import (
	"testing"

	"github.com/dvirbo/shapely/builder"
	"github.com/dvirbo/shapely/geometry"
	"github.com/dvirbo/shapely/partition"
)

func benchSolve(b *testing.B, p *geometry.Polygon, s partition.Strategy) {
	b.Helper()
	if _, err := partition.Solve(p, partition.WithStrategy(s)); err != nil {
		b.Fatalf("%v: %v", s, err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = partition.Solve(p, partition.WithStrategy(s))
	}
}

// BenchmarkGreedy_Comb32 partitions a comb with 32 teeth greedily.
func BenchmarkGreedy_Comb32(b *testing.B) {
	p, _ := builder.Comb(32, 2, 5)
	benchSolve(b, p, partition.Greedy)
}

// BenchmarkMinimum_Comb32 partitions the same comb optimally.
func BenchmarkMinimum_Comb32(b *testing.B) {
	p, _ := builder.Comb(32, 2, 5)
	benchSolve(b, p, partition.Minimum)
}

// BenchmarkGreedy_Staircase40 partitions a 40-step staircase greedily.
func BenchmarkGreedy_Staircase40(b *testing.B) {
	p, _ := builder.Staircase(40, 3)
	benchSolve(b, p, partition.Greedy)
}

// BenchmarkMinimum_Staircase40 partitions the staircase optimally.
func BenchmarkMinimum_Staircase40(b *testing.B) {
	p, _ := builder.Staircase(40, 3)
	benchSolve(b, p, partition.Minimum)
}

// BenchmarkRectangles_Comb32 measures reconstruction alone.
func BenchmarkRectangles_Comb32(b *testing.B) {
	p, _ := builder.Comb(32, 2, 5)
	edges, err := partition.Partition(p)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = partition.Rectangles(p, edges)
	}
}
