package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialectsCommand_ListsEveryDialectFlag(t *testing.T) {
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	runErr := runDialects(dialectsCmd, nil)

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()

	require.NoError(t, runErr)
	for _, d := range supportedDialects {
		assert.True(t, strings.Contains(output, d.flag), "missing flag %s", d.flag)
		assert.True(t, strings.Contains(output, d.name), "missing name %s", d.name)
	}
}
