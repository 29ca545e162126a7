package cmd

import (
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"

	"github.com/SpectralDragon/Yams/pkg/cmd/ui"
)

type YamsOptions struct{}

func NewDefaultYamsOptions() *YamsOptions {
	return &YamsOptions{}
}

func NewDefaultYamsCmd() *cobra.Command {
	return NewYamsCmd(NewDefaultYamsOptions())
}

func NewYamsCmd(_ *YamsOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "yams",
		Short: "yams serializes Go values as YAML core-schema documents",
		Long: `yams serializes Go values as YAML core-schema documents.

It implements a Node model, a core-schema tag resolver, a Representer
that turns host Go values into Nodes, an alias/redundancy engine, and
an event-driven text backend, all independent of any YAML parser.`,
	}

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.DisableAutoGenTag = true

	tty := ui.NewTTY(false)
	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))
	cmd.AddCommand(NewDumpCmd(NewDumpOptions(tty)))

	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.DisallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}
