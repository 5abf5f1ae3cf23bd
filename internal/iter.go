package internal

import (
	"iter"
)

// IterSeqConcat concatenates multiple iterators into a single iterator sequence.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// IterSeqEnumerate pairs each value of a sequence with a running index,
// starting at start.
func IterSeqEnumerate[I ~int | ~uint16 | ~uint32, T any](start I, seq iter.Seq[T]) iter.Seq2[I, T] {
	return func(yield func(I, T) bool) {
		index := start
		for val := range seq {
			if !yield(index, val) {
				return
			}
			index++
		}
	}
}
