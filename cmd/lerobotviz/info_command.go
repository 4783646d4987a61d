package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lerobotviz/internal/dataset"
)

type infoOutput struct {
	RepoID        string              `json:"repo_id"`
	Prefix        string              `json:"prefix,omitempty"`
	Version       string              `json:"codebase_version"`
	DescriptorURL string              `json:"descriptor_url"`
	Descriptor    *dataset.Descriptor `json:"descriptor"`
}

func newInfoCommand(ctx *commandContext) *cobra.Command {
	var prefix string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "info <repo-id>",
		Short: "Summarize a dataset descriptor",
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
			descriptorURL := res.ArtifactURL(resolver.URLs(), "meta/info.json")

			if asJSON {
				return writeJSON(cmd, infoOutput{
					RepoID:        res.RepoID,
					Prefix:        res.Prefix,
					Version:       res.Version,
					DescriptorURL: descriptorURL,
					Descriptor:    res.Descriptor,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, renderInfo(res, descriptorURL, shouldColorize(out)))
			return nil
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "Path prefix of the dataset inside the repository")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON output")
	return cmd
}

func renderInfo(res *dataset.Resolution, descriptorURL string, colorize bool) string {
	desc := res.Descriptor
	var b strings.Builder

	for _, line := range renderSectionHeader(res.RepoID, colorize) {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	rows := [][]string{
		{"Codebase version", res.Version},
		{"Robot type", formatOptional(desc.RobotType)},
		{"Episodes", formatCount(desc.TotalEpisodes)},
		{"Frames", formatCount(desc.TotalFrames)},
		{"Tasks", formatCount(desc.TotalTasks)},
		{"FPS", formatFPS(desc.FPS)},
		{"Chunk size", formatCount(desc.ChunksSize)},
	}
	if desc.TotalVideos > 0 {
		rows = append(rows, []string{"Videos", formatCount(desc.TotalVideos)})
	}
	if desc.DataFilesSizeInMB > 0 || desc.VideoFilesSizeInMB > 0 {
		rows = append(rows,
			[]string{"Data files size", formatSizeMB(desc.DataFilesSizeInMB)},
			[]string{"Video files size", formatSizeMB(desc.VideoFilesSizeInMB)},
		)
	}
	rows = append(rows,
		[]string{"Features", formatCount(int64(len(desc.Features)))},
		[]string{"Data path", formatOptional(desc.DataPath)},
		[]string{"Video path", formatOptional(desc.VideoPath)},
		[]string{"Descriptor", descriptorURL},
	)
	b.WriteString(renderTable([]string{"Field", "Value"}, rows, []columnAlignment{alignLeft, alignLeft}, colorize))
	b.WriteByte('\n')

	if splits := splitRows(desc); len(splits) > 0 {
		b.WriteByte('\n')
		b.WriteString(renderTable([]string{"Split", "Episodes"}, splits, []columnAlignment{alignLeft, alignRight}, colorize))
		b.WriteByte('\n')
	}
	return b.String()
}
