// Package bloom provides probabilistic URL deduplication for site walks.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter is a Bloom filter keyed by URL. It is not safe for concurrent use.
//
// Contains may report a URL that was never inserted; it never misses one
// that was.
type Filter struct {
	bits     *bloom.BloomFilter
	inserted uint
}

// NewFilter creates a filter sized for n expected URLs
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		bits: bloom.NewWithEstimates(n, fpRate),
	}
}

// Insert adds url and reports whether it was absent beforehand.
func (f *Filter) Insert(url string) bool {
	if f.bits.TestAndAddString(url) {
		return false
	}
	f.inserted++
	return true
}

// Contains reports whether url may have been inserted.
func (f *Filter) Contains(url string) bool {
	return f.bits.TestString(url)
}

// Len returns the number of successful inserts.
func (f *Filter) Len() uint {
	return f.inserted
}
