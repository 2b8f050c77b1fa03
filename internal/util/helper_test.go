package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloneSlice(t *testing.T) {
	src := []int{1, 2, 3}

	clone := CloneSlice(src, 0)
	assert.Equal(t, src, clone)
	clone[0] = 9
	assert.Equal(t, 1, src[0], "clone must not share storage")

	assert.Equal(t, []int{1, 2}, CloneSlice(src, 2))
	assert.Equal(t, []int{1, 2, 3, 0}, CloneSlice(src, 4))
	assert.Empty(t, CloneSlice([]string(nil), 0))
}
