package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"esfmt/internal/driver"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the format result cache",
}

var cacheCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Drop every cached format result",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		cache, err := driver.OpenDiskCache("esfmt")
		if err != nil {
			return fmt.Errorf("cache: %w", err)
		}
		if err := cache.DropAll(); err != nil {
			return fmt.Errorf("cache: %w", err)
		}
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheCleanCmd)
}
