package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeMap(t *testing.T) {

	dest := map[string]string{
		"a": "1",
		"b": "2",
	}
	src := map[string]string{
		"b": "3",
		"c": "4",
	}

	res := MergeMap(dest, src)

	assert.Equal(t, map[string]string{
		"a": "1",
		"b": "3",
		"c": "4",
	}, res)
}

func TestMergeMapEmptySrc(t *testing.T) {

	dest := map[string]int{"a": 1}

	res := MergeMap(dest, map[string]int{})
	assert.Equal(t, map[string]int{"a": 1}, res)
}

func TestRemoveDuplicates(t *testing.T) {

	assert.Equal(t, []string{"a", "b", "c"}, RemoveDuplicates([]string{"a", "b", "a", "c", "b"}))
	assert.Equal(t, []int{1, 2, 3}, RemoveDuplicates([]int{1, 2, 3}))
	assert.Equal(t, []string{}, RemoveDuplicates([]string{}))
}

func TestRemoveDuplicatesMutatesInPlace(t *testing.T) {

	input := []string{"a", "a", "b"}

	res := RemoveDuplicates(input)

	assert.Equal(t, []string{"a", "b"}, res)
	// the result aliases the input's backing array
	assert.Equal(t, &input[0], &res[0])
}

func TestRemoveDuplicatesPreservesFirstOccurrenceOrder(t *testing.T) {

	assert.Equal(t, []string{"nt:base", "mix:referenceable"}, RemoveDuplicates([]string{"nt:base", "mix:referenceable", "nt:base"}))
}
