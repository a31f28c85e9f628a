package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/sfx-library/internal/catalog"
	"github.com/rcliao/sfx-library/internal/store"
	"github.com/rcliao/sfx-library/internal/tags"
)

func init() {
	tagsCmd := &cobra.Command{
		Use:   "tags",
		Short: "Curate the browse tags",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List curated tags",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			s, err := openStore()
			if err != nil {
				exitErr("open store", err)
			}
			defer s.Close()

			c, err := loadCatalog(cmd, s)
			if err != nil {
				exitErr("curated tags", err)
			}
			printTags(cmd, c.List())
		},
	}

	availableCmd := &cobra.Command{
		Use:   "available",
		Short: "List tags used by sounds that are not curated yet",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			s, err := openStore()
			if err != nil {
				exitErr("open store", err)
			}
			defer s.Close()

			c, err := loadCatalog(cmd, s)
			if err != nil {
				exitErr("curated tags", err)
			}
			sounds, err := s.ListSounds(cmd.Context())
			if err != nil {
				exitErr("list sounds", err)
			}
			printTags(cmd, catalog.Available(catalog.ContentTags(sounds), c))
		},
	}

	addCmd := &cobra.Command{
		Use:   "add <tag>",
		Short: "Curate a tag",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			s, err := openStore()
			if err != nil {
				exitErr("open store", err)
			}
			defer s.Close()

			c, err := loadCatalog(cmd, s)
			if err != nil {
				exitErr("curated tags", err)
			}
			c, err = c.Add(args[0])
			if err != nil {
				exitErr("add tag", err)
			}
			saved, err := s.SetCuratedTags(cmd.Context(), c.List())
			if err != nil {
				exitErr("save tags", err)
			}
			printTags(cmd, saved)
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm <tag>",
		Short: "Stop curating a tag",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			s, err := openStore()
			if err != nil {
				exitErr("open store", err)
			}
			defer s.Close()

			c, err := loadCatalog(cmd, s)
			if err != nil {
				exitErr("curated tags", err)
			}
			saved, err := s.SetCuratedTags(cmd.Context(), c.Remove(args[0]).List())
			if err != nil {
				exitErr("save tags", err)
			}
			printTags(cmd, saved)
		},
	}

	setCmd := &cobra.Command{
		Use:   "set <tag,tag,...>",
		Short: "Replace the curated tags",
		Long:  "Replace the whole curated list with a comma-separated list. Empty entries are dropped.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			s, err := openStore()
			if err != nil {
				exitErr("open store", err)
			}
			defer s.Close()

			saved, err := s.SetCuratedTags(cmd.Context(), tags.ParseList(args[0]))
			if err != nil {
				exitErr("save tags", err)
			}
			printTags(cmd, saved)
		},
	}

	tagsCmd.AddCommand(listCmd, availableCmd, addCmd, rmCmd, setCmd)
	RootCmd.AddCommand(tagsCmd)
}

func loadCatalog(cmd *cobra.Command, s store.TagStore) (catalog.Catalog, error) {
	curated, err := s.CuratedTags(cmd.Context())
	if err != nil {
		return catalog.Catalog{}, err
	}
	return catalog.New(curated), nil
}

func printTags(cmd *cobra.Command, tagList []string) {
	if textOutput() {
		for _, t := range tagList {
			fmt.Fprintln(cmd.OutOrStdout(), tags.FormatForDisplay(t))
		}
		return
	}
	printJSON(cmd, tagList)
}
