package main

import (
	"encoding/json"

	"github.com/soaringjerry/myndwell/internal/api"
	"github.com/soaringjerry/myndwell/internal/services"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Print the sample dataset as JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		set := services.NewServiceSet(api.NewMemoryStore())
		data, err := services.Seed(set)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	},
}
