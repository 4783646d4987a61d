package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

type resolveOutput struct {
	RepoID        string `json:"repo_id"`
	Prefix        string `json:"prefix,omitempty"`
	Version       string `json:"codebase_version"`
	DescriptorURL string `json:"descriptor_url"`
}

func newResolveCommand(ctx *commandContext) *cobra.Command {
	var prefix string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "resolve <repo-id>",
		Short: "Fetch a dataset descriptor and print its validated codebase version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repoID := strings.TrimSpace(args[0])
			resolver, err := ctx.resolver(cmd)
			if err != nil {
				return err
			}
			res, err := resolver.Resolve(invocationContext(cmd), repoID, prefix)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, resolveOutput{
					RepoID:        res.RepoID,
					Prefix:        res.Prefix,
					Version:       res.Version,
					DescriptorURL: res.ArtifactURL(resolver.URLs(), "meta/info.json"),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Version)
			return nil
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "Path prefix of the dataset inside the repository")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON output")
	return cmd
}
