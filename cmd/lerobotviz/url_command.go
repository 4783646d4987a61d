package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lerobotviz/internal/dataset"
)

func newURLCommand(ctx *commandContext) *cobra.Command {
	var prefix string
	var version string

	cmd := &cobra.Command{
		Use:   "url <repo-id> <relative-path>",
		Short: "Print the artifact URL for a file inside a dataset",
		Long: "Print the artifact URL for a file inside a dataset.\n\n" +
			"Without --version the dataset descriptor is fetched first so the codebase version is validated.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			repoID := strings.TrimSpace(args[0])
			relPath := strings.TrimSpace(args[1])
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			urls := dataset.NewURLBuilder(cfg.Hub.BaseURL)

			version = strings.TrimSpace(version)
			if version != "" {
				if _, err := dataset.ValidateVersion(repoID, &dataset.Descriptor{CodebaseVersion: version}); err != nil {
					return err
				}
			} else {
				resolver, err := ctx.resolver(cmd)
				if err != nil {
					return err
				}
				version, err = resolver.ResolveVersion(invocationContext(cmd), repoID, prefix)
				if err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), urls.ArtifactURL(repoID, version, relPath, prefix))
			return nil
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "Path prefix of the dataset inside the repository")
	cmd.Flags().StringVar(&version, "version", "", "Codebase version to assume instead of fetching the descriptor")
	return cmd
}
