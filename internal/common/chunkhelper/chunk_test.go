package chunkhelper

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestChunk(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		size  int
		want  [][]int
	}{
		{name: "empty", items: nil, size: 2, want: nil},
		{name: "smaller than size", items: []int{1, 2}, size: 5, want: [][]int{{1, 2}}},
		{name: "exact", items: []int{1, 2, 3, 4}, size: 2, want: [][]int{{1, 2}, {3, 4}}},
		{name: "remainder", items: []int{1, 2, 3, 4, 5}, size: 2, want: [][]int{{1, 2}, {3, 4}, {5}}},
		{name: "non positive size", items: []int{1, 2, 3}, size: 0, want: [][]int{{1, 2, 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Chunk(tt.items, tt.size)); diff != "" {
				t.Errorf("Chunk() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestChunk_DoesNotOverlap(t *testing.T) {
	items := []int{1, 2, 3}
	chunks := Chunk(items, 2)
	chunks[0] = append(chunks[0], 99)
	if items[2] != 3 {
		t.Fatalf("append on a chunk overwrote the next one: %v", items)
	}
}
