// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package ranker

import (
	"errors"
	"math"
	"slices"
	"testing"
)

// denseMatrix is a row-major square matrix for tests.
type denseMatrix struct {
	n    int
	data []float32
}

func (m denseMatrix) Dim() int { return m.n }

func (m denseMatrix) Row(i int) ([]float32, error) {
	if i < 0 || i >= m.n {
		return nil, errors.New("out of range")
	}
	return m.data[i*m.n : (i+1)*m.n], nil
}

func indexes(cs []Candidate) []int {
	out := make([]int, len(cs))
	for i, c := range cs {
		out[i] = c.Index
	}
	return out
}

func TestRank(t *testing.T) {
	t.Parallel()

	nan := float32(math.NaN())

	tests := []struct {
		name string
		row  []float32
		self int
		k    int
		want []int
	}{
		{
			name: "descending order",
			row:  []float32{1.0, 0.2, 0.9, 0.5, 0.7},
			self: 0, k: 5,
			want: []int{2, 4, 3, 1},
		},
		{
			name: "ties broken by ascending index",
			row:  []float32{0.3, 1.0, 0.3, 0.8, 0.3},
			self: 1, k: 3,
			want: []int{3, 0, 2},
		},
		{
			name: "self excluded even when it does not sort first",
			row:  []float32{0.5, 0.9, 0.9, 0.1},
			self: 0, k: 5,
			want: []int{1, 2, 3},
		},
		{
			name: "self excluded when another entry ties at the top",
			row:  []float32{1.0, 1.0, 0.4},
			self: 1, k: 5,
			want: []int{0, 2},
		},
		{
			name: "NaN sorts last",
			row:  []float32{1.0, nan, 0.1, 0.6},
			self: 0, k: 5,
			want: []int{3, 2, 1},
		},
		{
			name: "truncated to k",
			row:  []float32{1, 0.9, 0.8, 0.7, 0.6, 0.5, 0.4, 0.3},
			self: 0, k: 5,
			want: []int{1, 2, 3, 4, 5},
		},
		{
			name: "single entry catalog",
			row:  []float32{1},
			self: 0, k: 5,
			want: []int{},
		},
		{
			name: "zero k",
			row:  []float32{1, 0.5},
			self: 0, k: 0,
			want: []int{},
		},
		{
			name: "negative k",
			row:  []float32{1, 0.5},
			self: 0, k: -3,
			want: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Rank(tt.row, tt.self, tt.k)
			if !slices.Equal(indexes(got), tt.want) {
				t.Errorf("Rank() = %v, want %v", indexes(got), tt.want)
			}
		})
	}
}

func TestRank_DoesNotMutateRow(t *testing.T) {
	t.Parallel()

	row := []float32{1, 0.1, 0.9}
	Rank(row, 0, 2)
	if !slices.Equal(row, []float32{1, 0.1, 0.9}) {
		t.Errorf("row mutated: %v", row)
	}
}

func TestTopK_Idempotent(t *testing.T) {
	t.Parallel()

	m := denseMatrix{n: 4, data: []float32{
		1, 0.5, 0.5, 0.2,
		0.5, 1, 0.3, 0.4,
		0.5, 0.3, 1, 0.9,
		0.2, 0.4, 0.9, 1,
	}}

	first, err := TopK(m, 2, DefaultK)
	if err != nil {
		t.Fatalf("TopK() error = %v", err)
	}
	for i := 0; i < 10; i++ {
		again, _ := TopK(m, 2, DefaultK)
		if !slices.Equal(first, again) {
			t.Fatalf("TopK not idempotent: %v vs %v", first, again)
		}
	}
	if !slices.Equal(indexes(first), []int{3, 0, 1}) {
		t.Errorf("TopK() = %v, want [3 0 1]", indexes(first))
	}
}

func TestTopK_LengthIsMinKAndNMinusOne(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 8; n++ {
		data := make([]float32, n*n)
		for i := range data {
			data[i] = float32(i%7) / 7
		}
		m := denseMatrix{n: n, data: data}

		got, err := TopK(m, 0, DefaultK)
		if err != nil {
			t.Fatalf("n=%d: TopK() error = %v", n, err)
		}
		if want := min(DefaultK, n-1); len(got) != want {
			t.Errorf("n=%d: len = %d, want %d", n, len(got), want)
		}
		for _, c := range got {
			if c.Index == 0 {
				t.Errorf("n=%d: query index present in result", n)
			}
		}
	}
}

func TestTopK_IndexOutOfRange(t *testing.T) {
	t.Parallel()

	m := denseMatrix{n: 2, data: []float32{1, 0, 0, 1}}
	for _, idx := range []int{-1, 2, 10} {
		if _, err := TopK(m, idx, DefaultK); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("TopK(%d) error = %v, want ErrIndexOutOfRange", idx, err)
		}
	}
}
