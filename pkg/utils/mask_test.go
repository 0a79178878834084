package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskToken(t *testing.T) {
	assert.Equal(t, "tok_***", MaskToken("tok_4f9d8e2a"))
	assert.Equal(t, "***", MaskToken("ab"))
	assert.Equal(t, "***", MaskToken(""))
}
