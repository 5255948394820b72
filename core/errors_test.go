package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	base := errors.New("u00098 missing")
	err := WrapError(base, EMISSING, "glyph %s not in dump", "u00098")
	assert.Equal(t, EMISSING, Code(err))
	assert.Equal(t, "glyph u00098 not in dump", UserMessage(err))
	assert.True(t, errors.Is(err, base), "wrapped error should stay in the chain")
	//
	outer := fmt.Errorf("rendering: %w", err)
	assert.Equal(t, EMISSING, Code(outer), "code should survive further wrapping")
}

func TestErrorDefaults(t *testing.T) {
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, EINTERNAL, Code(errors.New("plain")))
	assert.Equal(t, "internal error", UserMessage(errors.New("plain")))
	//
	err := ErrorWithCode(nil, ECYCLIC)
	assert.Equal(t, ECYCLIC, Code(err))
	assert.Equal(t, "cyclic reference", UserMessage(err))
	assert.Equal(t, "[124] cyclic reference", err.Error())
}

func TestErrorf(t *testing.T) {
	err := Error(EINVALID, "line %d is malformed", 7)
	assert.Equal(t, EINVALID, Code(err))
	assert.Contains(t, err.Error(), "line 7 is malformed")
}
