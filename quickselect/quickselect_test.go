package quickselect_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/canonical/go-matching/quickselect"

	. "gopkg.in/check.v1"
)

func Test(t *testing.T) { TestingT(t) }

type S struct{}

var _ = Suite(&S{})

func weights(edges []quickselect.Edge) []int64 {
	ws := make([]int64, len(edges))
	for i, e := range edges {
		ws[i] = e.Weight
	}
	sort.Slice(ws, func(i, j int) bool { return ws[i] > ws[j] })
	return ws
}

func topK(weights []int64, k int) []int64 {
	sorted := append([]int64(nil), weights...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] > sorted[j] })
	if k > len(sorted) {
		k = len(sorted)
	}
	return sorted[:k]
}

func edgesFromWeights(ws []int64) []quickselect.Edge {
	edges := make([]quickselect.Edge, len(ws))
	for i, w := range ws {
		edges[i] = quickselect.Edge{To: i, Weight: w}
	}
	return edges
}

type retentionTest struct {
	summary string
	weights []int64
	k       int
}

var retentionTests = []retentionTest{
	{"k larger than n leaves list unchanged in content", []int64{5, 3, 9}, 10},
	{"k equal to n", []int64{5, 3, 9, 1}, 4},
	{"single element", []int64{42}, 1},
	{"all ties", []int64{7, 7, 7, 7, 7}, 2},
	{"descending input (adversarial for naive pivot)", []int64{9, 8, 7, 6, 5, 4, 3, 2, 1}, 3},
	{"ascending input (adversarial for naive pivot)", []int64{1, 2, 3, 4, 5, 6, 7, 8, 9}, 4},
	{"k = 1", []int64{4, 1, 9, 2, 7}, 1},
	{"negative weights mixed in", []int64{-5, 3, -1, 9, 0}, 2},
}

func (*S) TestRetainTopK(c *C) {
	for _, test := range retentionTests {
		c.Logf("Summary: %s", test.summary)
		edges := edgesFromWeights(test.weights)
		quickselect.RetainTopK(edges, test.k)

		k := test.k
		if k > len(edges) {
			k = len(edges)
		}
		prefix := weights(edges[:k])
		want := topK(test.weights, test.k)
		c.Assert(prefix, DeepEquals, want)
	}
}

func (*S) TestRetainTopKEmpty(c *C) {
	var edges []quickselect.Edge
	quickselect.RetainTopK(edges, 5)
	c.Assert(edges, HasLen, 0)
}

func (*S) TestRetainTopKKeepsAllEdges(c *C) {
	edges := edgesFromWeights([]int64{10, 1, 8, 2, 6, 3})
	quickselect.RetainTopK(edges, 3)

	var all []int64
	for _, e := range edges {
		all = append(all, e.Weight)
	}
	sort.Slice(all, func(i, j int) bool { return all[i] > all[j] })
	c.Assert(all, DeepEquals, []int64{10, 8, 6, 3, 2, 1})
}

func benchmarkRetainTopK(n, k int, b *testing.B) {
	edges := make([]quickselect.Edge, n)
	for i := range edges {
		edges[i] = quickselect.Edge{To: i, Weight: int64((i*2654435761 + 1) % 1000003)}
	}
	work := make([]quickselect.Edge, n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(work, edges)
		quickselect.RetainTopK(work, k)
	}
}

func BenchmarkRetainTopK(b *testing.B) {
	for _, n := range []int{10, 100, 1000, 10000} {
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			benchmarkRetainTopK(n, n/3+1, b)
		})
	}
}
