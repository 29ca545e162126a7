package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/SpectralDragon/Yams"
	"github.com/SpectralDragon/Yams/pkg/cmd/ui"
)

// DumpOptions backs the `yams dump` command. It exercises the public
// Dump surface over a small set of built-in documents rather than
// reading arbitrary host input, since parsing foreign data formats
// into Go values is outside what this command demonstrates.
type DumpOptions struct {
	ui ui.UI

	ConfigFile string
	Canonical  bool
	SortKeys   bool
	Indent     int
	Width      int
}

func NewDumpOptions(ui ui.UI) *DumpOptions {
	return &DumpOptions{ui: ui}
}

func NewDumpCmd(o *DumpOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Serialize a set of built-in example documents to YAML",
		RunE:  func(c *cobra.Command, _ []string) error { return o.Run(c) },
	}
	cmd.Flags().StringVarP(&o.ConfigFile, "config", "c", "", "Path to a .yams.toml defaults file")
	cmd.Flags().BoolVar(&o.Canonical, "canonical", false, "Emit canonical form (explicit tags, flow collections)")
	cmd.Flags().BoolVar(&o.SortKeys, "sort-keys", false, "Sort mapping keys lexically")
	cmd.Flags().IntVar(&o.Indent, "indent", 0, "Block indent width (0 = backend default of 2)")
	cmd.Flags().IntVar(&o.Width, "width", 0, "Preferred line width (0 = backend default of 80, -1 = unlimited)")
	return cmd
}

func (o *DumpOptions) Run(cmd *cobra.Command) error {
	opts := yams.Options{
		Canonical: o.Canonical,
		SortKeys:  o.SortKeys,
		Indent:    o.Indent,
		Width:     o.Width,
	}

	if o.ConfigFile != "" {
		fileCfg, err := LoadFileConfig(o.ConfigFile)
		if err != nil {
			return err
		}
		fileCfg.ApplyTo(&opts, func(name string) bool { return cmd.Flags().Changed(name) })
	}

	out, err := yams.Dump(exampleDocuments(), opts)
	if err != nil {
		return err
	}

	o.ui.Printf("%s", out)
	return nil
}

func exampleDocuments() []interface{} {
	return []interface{}{
		map[string]interface{}{
			"name":    "widget",
			"count":   3,
			"tags":    []interface{}{"a", "b"},
			"enabled": true,
		},
		"true",
		3.14159,
		time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}
