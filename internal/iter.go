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
					return
				}
			}
		}
	}
}

// IterSeqOf returns an iterator over the given values.
func IterSeqOf[T any](vals ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, val := range vals {
			if !yield(val) {
				return
			}
		}
	}
}
