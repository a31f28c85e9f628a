package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/sfx-library/internal/gate"
	"github.com/rcliao/sfx-library/internal/tags"
)

type browseEntry struct {
	Tag     string `json:"tag"`
	Display string `json:"display"`
}

func init() {
	cmd := &cobra.Command{
		Use:   "browse [tag]",
		Short: "List browse tags, or show the sounds under one",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 1 {
				runGated(cmd, gate.TagAction(args[0]))
				return
			}
			listBrowseTags(cmd)
		},
	}
	addGateFlags(cmd)
	RootCmd.AddCommand(cmd)
}

func listBrowseTags(cmd *cobra.Command) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	curated, err := s.CuratedTags(cmd.Context())
	if err != nil {
		exitErr("curated tags", err)
	}

	entries := []browseEntry{{Tag: tags.AllSounds, Display: tags.CapitalizeWords(tags.AllSounds)}}
	for _, t := range curated {
		entries = append(entries, browseEntry{Tag: t, Display: tags.FormatForDisplay(t)})
	}

	if textOutput() {
		for _, e := range entries {
			fmt.Fprintln(cmd.OutOrStdout(), e.Display)
		}
		return
	}
	printJSON(cmd, entries)
}
