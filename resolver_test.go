package yams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveTagNull(t *testing.T) {
	for _, s := range []string{"", "~", "null", "Null", "NULL"} {
		assert.Equal(t, NullTag, ResolveTag(s), "input %q", s)
	}
}

func TestResolveTagBool(t *testing.T) {
	for _, s := range []string{"true", "True", "TRUE", "false", "False", "FALSE"} {
		assert.Equal(t, BoolTag, ResolveTag(s), "input %q", s)
	}
	assert.Equal(t, StrTag, ResolveTag("yes"), "yes is only bool in 1.1-compat mode")
	assert.Equal(t, BoolTag, ResolveTagCompat11("yes"))
	assert.Equal(t, BoolTag, ResolveTagCompat11("off"))
}

func TestResolveTagInt(t *testing.T) {
	for _, s := range []string{"0", "123", "-45", "+7", "0o17", "0x1F", "0b101"} {
		assert.Equal(t, IntTag, ResolveTag(s), "input %q", s)
	}
}

func TestResolveTagFloat(t *testing.T) {
	for _, s := range []string{"1.5", "-1.5", "1e10", ".5", ".inf", "-.inf", ".nan"} {
		assert.Equal(t, FloatTag, ResolveTag(s), "input %q", s)
	}
}

func TestResolveTagTimestamp(t *testing.T) {
	for _, s := range []string{"2001-01-01", "2001-01-01T00:00:00Z", "2001-01-01 00:00:00.12 +0"} {
		assert.Equal(t, TimestampTag, ResolveTag(s), "input %q", s)
	}
}

func TestResolveTagStrFallback(t *testing.T) {
	for _, s := range []string{"hello", "yes", "1.2.3", "0123abc"} {
		assert.Equal(t, StrTag, ResolveTag(s), "input %q", s)
	}
}
