// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshproc

import (
	"cogentcore.org/procmesh/math32"
	"cogentcore.org/procmesh/mesh"
	"golang.org/x/exp/constraints"
)

// CacheSize is the size of the simulated vertex cache.
const CacheSize = 32

// OptimizeIndices reorders the triangles of the mesh to improve the hit
// rate of a post-transform vertex cache, using a greedy selection of the
// best scoring triangle among those touching recently used vertices.
// The vertex order within each triangle is kept, so winding is preserved.
func OptimizeIndices(buf *mesh.Buffers) {
	if buf.Wide() {
		optimizeIndices(buf.Index32, buf.VertexCount())
	} else {
		optimizeIndices(buf.Index16, buf.VertexCount())
	}
}

// ReorderVertices reorders the vertices of the mesh into the order in which
// the triangles first use them, remapping the indices. Vertices that no
// triangle uses are moved to the end, keeping their relative order.
func ReorderVertices(buf *mesh.Buffers) {
	var order []int
	if buf.Wide() {
		order = firstUseOrder(buf.Index32, buf.VertexCount())
	} else {
		order = firstUseOrder(buf.Index16, buf.VertexCount())
	}
	if buf.Positions != nil {
		buf.Positions = permute(buf.Positions, order)
	} else {
		buf.Vertices = permute(buf.Vertices, order)
	}
}

// CacheMissRatio returns the average number of vertex cache misses per
// triangle for a FIFO cache of the given size: 3 means no reuse at all,
// and well-ordered regular meshes approach 0.5.
func CacheMissRatio(buf *mesh.Buffers, cacheSize int) float32 {
	if buf.Wide() {
		return cacheMissRatio(buf.Index32, buf.VertexCount(), cacheSize)
	}
	return cacheMissRatio(buf.Index16, buf.VertexCount(), cacheSize)
}

func cacheMissRatio[I constraints.Unsigned](indices []I, vertexCount, cacheSize int) float32 {
	if len(indices) < 3 {
		return 0
	}
	// stamp[v] is the miss count after v entered the cache, zero if never
	stamp := make([]int, vertexCount)
	misses := 0
	for _, idx := range indices {
		v := int(idx)
		if stamp[v] == 0 || misses-stamp[v] >= cacheSize {
			misses++
			stamp[v] = misses
		}
	}
	return float32(misses) / float32(len(indices)/3)
}

// firstUseOrder remaps indices in place to first-use order and returns,
// for each new vertex slot, the old vertex it holds.
func firstUseOrder[I constraints.Unsigned](indices []I, vertexCount int) []int {
	newIndex := make([]int, vertexCount)
	for i := range newIndex {
		newIndex[i] = -1
	}
	order := make([]int, 0, vertexCount)
	for i, idx := range indices {
		v := int(idx)
		if newIndex[v] < 0 {
			newIndex[v] = len(order)
			order = append(order, v)
		}
		indices[i] = I(newIndex[v])
	}
	for v, n := range newIndex {
		if n < 0 {
			order = append(order, v)
		}
	}
	return order
}

// permute returns the elements of s in the given order of old indices.
func permute[T any](s []T, order []int) []T {
	ns := make([]T, len(s))
	for i, old := range order {
		ns[i] = s[old]
	}
	return ns
}

// vertexScore scores a vertex by its position in the cache, favoring
// the most recent triangle's vertices, and by the number of triangles
// still using it, favoring vertices about to be finished.
func vertexScore(cachePos, remaining int) float32 {
	if remaining == 0 {
		return -1
	}
	var score float32
	switch {
	case cachePos < 0:
	case cachePos < 3:
		score = 0.75
	default:
		score = math32.Pow(1-float32(cachePos-3)/float32(CacheSize-3), 1.5)
	}
	return score + 2*math32.Pow(float32(remaining), -0.5)
}

func optimizeIndices[I constraints.Unsigned](indices []I, vertexCount int) {
	nt := len(indices) / 3
	if nt < 2 {
		return
	}

	// triangles using each vertex, as offsets into adjacency
	offsets := make([]int, vertexCount+1)
	for _, idx := range indices {
		offsets[int(idx)+1]++
	}
	for v := range vertexCount {
		offsets[v+1] += offsets[v]
	}
	adjacency := make([]int, len(indices))
	fill := make([]int, vertexCount)
	for i, idx := range indices {
		v := int(idx)
		adjacency[offsets[v]+fill[v]] = i / 3
		fill[v]++
	}

	remaining := fill
	cachePos := make([]int, vertexCount)
	score := make([]float32, vertexCount)
	for v := range vertexCount {
		cachePos[v] = -1
		score[v] = vertexScore(-1, remaining[v])
	}
	triScore := func(t int) float32 {
		return score[indices[3*t]] + score[indices[3*t+1]] + score[indices[3*t+2]]
	}
	emitted := make([]bool, nt)
	out := make([]I, 0, len(indices))

	cache := make([]int, 0, CacheSize+3)
	next := make([]int, 0, CacheSize+3)
	best := 0
	for t := 1; t < nt; t++ {
		if triScore(t) > triScore(best) {
			best = t
		}
	}
	cursor := 0

	for emittedCount := 0; emittedCount < nt; emittedCount++ {
		if best < 0 {
			for emitted[cursor] {
				cursor++
			}
			best = cursor
		}
		tri := indices[3*best : 3*best+3]
		out = append(out, tri...)
		emitted[best] = true
		for _, idx := range tri {
			remaining[idx]--
		}

		// move the triangle's vertices to the front of the cache
		next = next[:0]
		for _, idx := range tri {
			next = append(next, int(idx))
		}
		for _, v := range cache {
			if v != int(tri[0]) && v != int(tri[1]) && v != int(tri[2]) {
				next = append(next, v)
			}
		}
		cache, next = next, cache

		best = -1
		var bestScore float32
		for pos, v := range cache {
			if pos >= CacheSize {
				cachePos[v] = -1
			} else {
				cachePos[v] = pos
			}
			score[v] = vertexScore(cachePos[v], remaining[v])
		}
		for _, v := range cache {
			for _, t := range adjacency[offsets[v]:offsets[v+1]] {
				if emitted[t] {
					continue
				}
				s := triScore(t)
				if best < 0 || s > bestScore {
					best = t
					bestScore = s
				}
			}
		}
		if len(cache) > CacheSize {
			cache = cache[:CacheSize]
		}
	}
	copy(indices, out)
}
