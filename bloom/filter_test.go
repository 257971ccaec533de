package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/pagecheck/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_Insert(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.Contains("https://example.com/page1"))
	assert.True(t, f.Insert("https://example.com/page1"), "first insert should report new")
	assert.True(t, f.Contains("https://example.com/page1"))
	assert.False(t, f.Contains("https://example.com/page2"))
}

func TestFilter_Insert_is_idempotent(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)
	url := "https://example.com/page1"

	assert.True(t, f.Insert(url))
	assert.False(t, f.Insert(url))
	assert.False(t, f.Insert(url))
	assert.Equal(t, uint(1), f.Len())
}

func TestFilter_Len(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)
	assert.Equal(t, uint(0), f.Len())

	f.Insert("https://example.com/page1")
	f.Insert("https://example.com/page2")
	f.Insert("https://example.com/page3")

	assert.Equal(t, uint(3), f.Len())
}

func TestFilter_FalsePositiveRate(t *testing.T) {
	t.Parallel()

	const (
		numItems   = 10000
		fpRate     = 0.01
		testProbes = 10000
	)

	f := bloom.NewFilter(numItems, fpRate)
	for i := range numItems {
		f.Insert(fmt.Sprintf("https://example.com/added/%d", i))
	}

	falsePositives := 0
	for i := range testProbes {
		if f.Contains(fmt.Sprintf("https://example.com/notadded/%d", i)) {
			falsePositives++
		}
	}

	// Allow up to 2% to account for statistical variance.
	actualRate := float64(falsePositives) / float64(testProbes)
	assert.Less(t, actualRate, 0.02, "false positive rate %f exceeds 2%%", actualRate)
}
