package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SpectralDragon/Yams/pkg/cmd/ui"
)

func TestDumpCmdPrintsSortedOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	tty := ui.NewCustomWriterTTY(false, &stdout, &stderr)
	o := NewDumpOptions(tty)
	cmd := NewDumpCmd(o)
	cmd.SetArgs([]string{"--sort-keys"})

	require.NoError(t, cmd.Execute())
	assert.Empty(t, stderr.String())
	assert.Contains(t, stdout.String(), "enabled: true")
	assert.Contains(t, stdout.String(), "---")
}

func TestDumpCmdRejectsExtraArgsThroughRootCmd(t *testing.T) {
	var stdout, stderr bytes.Buffer
	root := NewYamsCmd(NewDefaultYamsOptions())
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs([]string{"dump", "unexpected-arg"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not accept extra arguments")
}
