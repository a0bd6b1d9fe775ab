package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quelgo/quel/utils"
)

func TestHash64(t *testing.T) {
	a := utils.Hash64("SELECT 1")
	b := utils.Hash64("SELECT 1")
	c := utils.Hash64("SELECT 2")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotZero(t, utils.Hash64(""))
}
