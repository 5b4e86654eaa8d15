package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/handiism/showcase/internal/counter"
	"github.com/handiism/showcase/internal/store"
	"github.com/spf13/cobra"
)

var countCmd = &cobra.Command{
	Use:       "count [increment|reset]",
	Short:     "Show or change the download count",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"increment", "reset"},
	RunE: func(cmd *cobra.Command, args []string) error {
		kv, err := store.Open(settings.StoreBackend, settings.StorePath, logger)
		if err != nil {
			return err
		}
		defer kv.Close()

		c, err := counter.New(kv, logger)
		if err != nil {
			return err
		}

		if len(args) == 1 {
			switch args[0] {
			case "increment":
				err = c.Increment()
			case "reset":
				err = c.Reset()
			}
			if err != nil {
				return err
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Downloads: %s\n", humanize.Comma(int64(c.Count())))
		return nil
	},
}
