package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/sfx-library/internal/model"
)

func init() {
	suggestCmd := &cobra.Command{
		Use:   "suggest",
		Short: "Submit and review sound suggestions",
	}

	addCmd := &cobra.Command{
		Use:   "add <sound name>",
		Short: "Suggest a sound for the library",
		Args:  cobra.ExactArgs(1),
		Run:   runSuggestAdd,
	}
	addCmd.Flags().StringP("category", "c", "", "Category")
	addCmd.Flags().String("description", "", "Description")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List suggestions, unread first",
		Args:  cobra.NoArgs,
		Run:   runSuggestList,
	}
	listCmd.Flags().Bool("unread", false, "Only unread suggestions")

	readCmd := &cobra.Command{
		Use:   "read <id>",
		Short: "Mark a suggestion as read",
		Args:  cobra.ExactArgs(1),
		Run:   runSuggestRead,
	}
	readCmd.Flags().Bool("unset", false, "Mark as unread instead")

	rmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a suggestion",
		Args:  cobra.ExactArgs(1),
		Run:   runSuggestRm,
	}

	suggestCmd.AddCommand(addCmd, listCmd, readCmd, rmCmd)
	RootCmd.AddCommand(suggestCmd)
}

func runSuggestAdd(cmd *cobra.Command, args []string) {
	category, _ := cmd.Flags().GetString("category")
	description, _ := cmd.Flags().GetString("description")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	sg, err := s.CreateSuggestion(cmd.Context(), model.SuggestionInput{
		SoundName:   args[0],
		Category:    category,
		Description: description,
	})
	if err != nil {
		exitErr("add suggestion", err)
	}
	printJSON(cmd, sg)
}

func runSuggestList(cmd *cobra.Command, args []string) {
	unreadOnly, _ := cmd.Flags().GetBool("unread")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	all, err := s.ListSuggestions(cmd.Context())
	if err != nil {
		exitErr("list suggestions", err)
	}
	list := all
	if unreadOnly {
		list = []model.Suggestion{}
		for _, sg := range all {
			if !sg.IsRead {
				list = append(list, sg)
			}
		}
	}

	if textOutput() {
		for _, sg := range list {
			mark := " "
			if !sg.IsRead {
				mark = "*"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s", mark, sg.ID, sg.SoundName)
			if sg.Category != "" {
				fmt.Fprintf(cmd.OutOrStdout(), " (%s)", sg.Category)
			}
			fmt.Fprintln(cmd.OutOrStdout())
		}
		return
	}
	printJSON(cmd, list)
}

func runSuggestRead(cmd *cobra.Command, args []string) {
	unset, _ := cmd.Flags().GetBool("unset")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	sg, err := s.MarkSuggestionRead(cmd.Context(), args[0], !unset)
	if err != nil {
		exitErr("mark suggestion", err)
	}
	printJSON(cmd, sg)
}

func runSuggestRm(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.DeleteSuggestion(cmd.Context(), args[0]); err != nil {
		exitErr("delete suggestion", err)
	}
	printJSON(cmd, map[string]any{"ok": true, "deleted": args[0]})
}
