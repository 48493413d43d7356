package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitIsIdempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Init(false)
		Init(true)
		Init(false)
	})
}
