// SPDX-License-Identifier: Unlicense OR MIT

// Command focusring shows focus rings around a column of focusable
// rows. Use Tab or the pointer to move the focus.
package main

import (
	"log"
	"os"

	"gioui.org/app"
	"github.com/spf13/cobra"
)

type options struct {
	config string
	rtl    bool
	sticky bool
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:          "focusring",
		Short:        "Show focus rings around focusable rows",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	cmd.Flags().StringVar(&opts.config, "config", "", "YAML file with the ring style")
	cmd.Flags().BoolVar(&opts.rtl, "rtl", false, "lay out right-to-left")
	cmd.Flags().BoolVar(&opts.sticky, "sticky", false, "keep rings visible after focus is lost")
	return cmd
}

func main() {
	go func() {
		if err := newRootCmd().Execute(); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}
