package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStartDerivesRefutationAcrossTwoLines(t *testing.T) {
	in := strings.NewReader("p(a).\n~ p(a).\n")
	var out bytes.Buffer

	Start(in, &out, 0)

	assert.Contains(t, out.String(), "empty clause derived")
}

func TestStartStopsAtEOF(t *testing.T) {
	in := strings.NewReader("")
	var out bytes.Buffer

	Start(in, &out, 0)

	assert.Equal(t, PROMPT, out.String())
}
