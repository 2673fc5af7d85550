package debug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogfDisabledByDefault(t *testing.T) {
	SetOutput(nil)
	assert.False(t, Enabled())
	Logf("should go nowhere %d", 1)
}

func TestLogfWritesWhenEnabled(t *testing.T) {
	var buf strings.Builder
	SetOutput(&buf)
	defer SetOutput(nil)

	assert.True(t, Enabled())
	Logf("fingerprint %016x", uint64(0xabc))

	out := buf.String()
	assert.Contains(t, out, "fingerprint 0000000000000abc")
	assert.True(t, strings.HasSuffix(out, "\n"))
}
