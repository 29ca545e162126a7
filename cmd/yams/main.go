package main

import (
	"fmt"
	"os"

	uierrs "github.com/cppforlife/go-cli-ui/errors"

	"github.com/SpectralDragon/Yams/pkg/cmd"
)

func main() {
	command := cmd.NewDefaultYamsCmd()

	if err := command.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "yams: Error: %s\n", uierrs.NewMultiLineError(err))
		os.Exit(1)
	}
}
