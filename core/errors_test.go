package core

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, EINTERNAL, Code(errors.New("plain")))
	err := Error(EMISSING, "no glyph for %q", "ক")
	assert.Equal(t, EMISSING, Code(err))
	assert.Equal(t, `no glyph for "ক"`, UserMessage(err))
	assert.Equal(t, `[122] no glyph for "ক": not found`, err.Error())
}

func TestWrapError(t *testing.T) {
	cause := errors.New("cause")
	err := WrapError(cause, EINVALID, "parsing %s", "index.csv")
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, EINVALID, Code(err))
	assert.Equal(t, "[123] parsing index.csv: cause", err.Error())
	assert.Equal(t, EINTERNAL, Code(WrapError(nil, EINTERNAL, "")))
	assert.Equal(t, "[125] internal error", Error(EINTERNAL, "").Error())
}

func TestOutermostCodeWins(t *testing.T) {
	missing := Error(EMISSING, "no glyph for %q", "ক")
	err := WrapError(missing, EIO, "writing sample %d", 3)
	assert.Equal(t, EIO, Code(err))
	assert.True(t, HasCode(err, EIO))
	assert.False(t, HasCode(err, EMISSING))
	assert.True(t, errors.Is(err, missing))
	assert.Equal(t, "writing sample 3", UserMessage(err))
	assert.Equal(t, "i/o error", UserMessage(Error(EIO, "")))
	assert.Equal(t, "internal error", UserMessage(errors.New("plain")))
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, "undefined error", ErrorCode(7).String())
}

func TestRandomInRange(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		n := RandomInRange(rnd, 2, 4)
		assert.True(t, n >= 2 && n <= 4, "%d out of range", n)
	}
	assert.Equal(t, 3, RandomInRange(rnd, 3, 1))
}
