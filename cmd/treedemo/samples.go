package main

import (
	"github.com/lifestreamy/TreeBuilder/internal/samples"
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Build the chat-bot menu",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		imperative, _ := cmd.Flags().GetBool("imperative")
		if imperative {
			return show(cmd.OutOrStdout(), samples.MenuImperative(), opts)
		}
		menu, err := samples.Menu()
		if err != nil {
			return err
		}
		return show(cmd.OutOrStdout(), menu, opts)
	},
}

var genericCmd = &cobra.Command{
	Use:   "generic",
	Short: "Build a tree of int attributes, declaratively and imperatively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := samples.Generic()
		if err != nil {
			return err
		}
		return show(cmd.OutOrStdout(), t, opts)
	},
}

func init() {
	menuCmd.Flags().Bool("imperative", false, "build the menu by imperative calls")
}
