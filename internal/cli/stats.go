package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show library statistics",
		Args:  cobra.NoArgs,
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	st, err := s.Stats(cmd.Context(), getDBPath())
	if err != nil {
		exitErr("stats", err)
	}

	if textOutput() {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "database:      %s (%d bytes)\n", st.DBPath, st.DBSizeBytes)
		fmt.Fprintf(w, "sounds:        %d (%d nsfw)\n", st.Sounds, st.RestrictedSounds)
		fmt.Fprintf(w, "content tags:  %d\n", st.ContentTags)
		fmt.Fprintf(w, "curated tags:  %d\n", st.CuratedTags)
		fmt.Fprintf(w, "suggestions:   %d (%d unread)\n", st.Suggestions, st.UnreadSuggestions)
		return
	}
	printJSON(cmd, st)
}
