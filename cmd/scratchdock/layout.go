package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pkt.systems/pslog"
	"pkt.systems/scratchdock/internal/appconfig"
	"pkt.systems/scratchdock/internal/persist"
	"pkt.systems/scratchdock/schema"
)

func newLayoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Inspect persisted dock layouts",
	}
	cmd.AddCommand(newLayoutShowCmd())
	return cmd
}

func newLayoutShowCmd() *cobra.Command {
	var cfgPath string
	var workspace string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the persisted layout for a workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := appconfig.Load(cfgPath)
			if err != nil {
				return err
			}
			if workspace == "" {
				workspace = cfg.Workspace
			}
			store, err := persist.NewStoreWithLogger(cfg.StateDir, pslog.Ctx(cmd.Context()))
			if err != nil {
				return err
			}
			snapshot, ok, err := store.Load(workspace)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !ok {
				_, err = fmt.Fprintf(out, "no layout persisted for workspace %q\n", workspace)
				return err
			}
			fmt.Fprintf(out, "workspace: %s\n", workspace)
			if snapshot.Theme != "" {
				fmt.Fprintf(out, "theme: %s\n", snapshot.Theme)
			}
			fmt.Fprintf(out, "counter: %d\n", snapshot.Dock.Counter)
			for i, node := range snapshot.Dock.Nodes {
				if node.Kind != schema.NodeLeaf {
					continue
				}
				fmt.Fprintf(out, "node %d:\n", i)
				for j, tab := range node.Tabs {
					marker := " "
					if j == node.Selected {
						marker = "*"
					}
					fmt.Fprintf(out, "  %s %s (%s)\n", marker, tab.Name, tab.ID)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "config file path")
	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "workspace name (defaults to configured workspace)")
	return cmd
}

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range schema.AvailableThemes() {
				suffix := ""
				if name == schema.DefaultTheme {
					suffix = " (default)"
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", name, suffix); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
