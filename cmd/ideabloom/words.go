package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/ideabloom/pkg/namegen"
)

func newWordsCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "words",
		Short: "Print the word bank as YAML",
		Long: "Print the active word bank as YAML. The output is a valid word bank file\n" +
			"that can be edited and passed back with --wordbank or NAMEGEN_WORDBANK_PATH.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			bank, err := loadBank(path)
			if err != nil {
				return err
			}
			return bank.Encode(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&path, "wordbank", "", "YAML word bank to validate and print instead of the built-in one")
	return cmd
}

func loadBank(path string) (*namegen.WordBank, error) {
	if path == "" {
		return namegen.DefaultWordBank(), nil
	}
	return namegen.LoadWordBankFile(path)
}
