package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chronolens/pluginhost/application/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List host capabilities and whether their backing files exist",
	RunE: func(cmd *cobra.Command, _ []string) error {
		hostRoot := viper.GetString("host_root")
		if hostRoot == "" {
			return fmt.Errorf("catalog requires --host-root (or CHRONOLENS_HOST_ROOT)")
		}
		cat, err := catalog.NewCatalog(catalog.WithHostRoot(hostRoot))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, TitleStyle.Render("host capabilities"))
		for _, name := range cat.Names() {
			if hit, ok := cat.Probe(name); ok {
				fmt.Fprintf(out, "  %s %s -> %s\n", OKStyle.Render("ok"), name, hit.Path)
				continue
			}
			fmt.Fprintf(out, "  %s %s\n", MissingStyle.Render("missing"), name)
		}
		return nil
	},
}

func init() {
	catalogCmd.Flags().String("host-root", "", "host application source root")
	_ = viper.BindPFlag("host_root", catalogCmd.Flags().Lookup("host-root"))
}
