package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/sfx-library/internal/model"
	"github.com/rcliao/sfx-library/internal/search"
	"github.com/rcliao/sfx-library/internal/tags"
)

func init() {
	soundCmd := &cobra.Command{
		Use:   "sound",
		Short: "Manage sounds in the library",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a sound",
		Args:  cobra.NoArgs,
		Run:   runSoundAdd,
	}
	addCmd.Flags().String("title", "", "Title (required)")
	addCmd.Flags().StringP("url", "u", "", "Audio URL (required)")
	addCmd.Flags().StringP("tags", "t", "", "Comma-separated tags")
	addCmd.Flags().String("equipment", "", "Recording equipment")
	addCmd.Flags().String("format", "", "Audio format, e.g. wav")
	addCmd.MarkFlagRequired("title")
	addCmd.MarkFlagRequired("url")

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a sound",
		Args:  cobra.ExactArgs(1),
		Run:   runSoundGet,
	}

	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a sound; only the given flags change",
		Args:  cobra.ExactArgs(1),
		Run:   runSoundUpdate,
	}
	updateCmd.Flags().String("title", "", "New title")
	updateCmd.Flags().StringP("url", "u", "", "New audio URL")
	updateCmd.Flags().StringP("tags", "t", "", "Replace tags (comma-separated; empty clears)")
	updateCmd.Flags().String("equipment", "", "New equipment (empty clears)")
	updateCmd.Flags().String("format", "", "New format (empty clears)")

	rmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a sound",
		Args:  cobra.ExactArgs(1),
		Run:   runSoundRm,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List sounds, newest first",
		Long:  "List every sound including NSFW ones. --filter matches title, tags, equipment and format.",
		Args:  cobra.NoArgs,
		Run:   runSoundList,
	}
	listCmd.Flags().StringP("filter", "f", "", "Case-insensitive substring filter")
	listCmd.Flags().IntP("limit", "l", 0, "Max results (0 = all)")

	soundCmd.AddCommand(addCmd, getCmd, updateCmd, rmCmd, listCmd)
	RootCmd.AddCommand(soundCmd)
}

func runSoundAdd(cmd *cobra.Command, args []string) {
	title, _ := cmd.Flags().GetString("title")
	url, _ := cmd.Flags().GetString("url")
	tagsStr, _ := cmd.Flags().GetString("tags")
	equipment, _ := cmd.Flags().GetString("equipment")
	format, _ := cmd.Flags().GetString("format")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	snd, err := s.CreateSound(cmd.Context(), model.SoundInput{
		Title:     title,
		AudioURL:  url,
		Tags:      tags.ParseList(tagsStr),
		Equipment: equipment,
		Format:    format,
	})
	if err != nil {
		exitErr("add sound", err)
	}
	printSound(cmd, *snd)
}

func runSoundGet(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	snd, err := s.GetSound(cmd.Context(), args[0])
	if err != nil {
		exitErr("get sound", err)
	}
	printSound(cmd, *snd)
}

func runSoundUpdate(cmd *cobra.Command, args []string) {
	var u model.SoundUpdate
	flags := cmd.Flags()
	if flags.Changed("title") {
		v, _ := flags.GetString("title")
		u.Title = &v
	}
	if flags.Changed("url") {
		v, _ := flags.GetString("url")
		u.AudioURL = &v
	}
	if flags.Changed("tags") {
		v, _ := flags.GetString("tags")
		u.Tags = tags.ParseList(v)
		u.SetTags = true
	}
	if flags.Changed("equipment") {
		v, _ := flags.GetString("equipment")
		u.Equipment = &v
	}
	if flags.Changed("format") {
		v, _ := flags.GetString("format")
		u.Format = &v
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	snd, err := s.UpdateSound(cmd.Context(), args[0], u)
	if err != nil {
		exitErr("update sound", err)
	}
	printSound(cmd, *snd)
}

func runSoundRm(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.DeleteSound(cmd.Context(), args[0]); err != nil {
		exitErr("delete sound", err)
	}
	printJSON(cmd, map[string]any{"ok": true, "deleted": args[0]})
}

func runSoundList(cmd *cobra.Command, args []string) {
	filter, _ := cmd.Flags().GetString("filter")
	limit, _ := cmd.Flags().GetInt("limit")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	sounds, err := s.ListSounds(cmd.Context())
	if err != nil {
		exitErr("list sounds", err)
	}
	sounds = search.Filter(sounds, filter)
	if limit > 0 && len(sounds) > limit {
		sounds = sounds[:limit]
	}

	if textOutput() {
		if len(sounds) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no sounds")
			return
		}
		writeSounds(cmd.OutOrStdout(), sounds)
		return
	}
	printJSON(cmd, sounds)
}

func printSound(cmd *cobra.Command, snd model.Sound) {
	if textOutput() {
		fmt.Fprintln(cmd.OutOrStdout(), soundLine(snd))
		return
	}
	printJSON(cmd, snd)
}
