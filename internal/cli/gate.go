package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rcliao/sfx-library/internal/gate"
	"github.com/rcliao/sfx-library/internal/model"
)

type gateStatus struct {
	Verified   bool       `json:"verified"`
	AffirmedAt *time.Time `json:"affirmed_at,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
}

func init() {
	gateCmd := &cobra.Command{
		Use:   "gate",
		Short: "Inspect or change the stored age affirmation",
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether a valid age affirmation is stored",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			s, err := openStore()
			if err != nil {
				exitErr("open store", err)
			}
			defer s.Close()

			sess, err := gate.NewSession(ctx, s)
			if err != nil {
				exitErr("load affirmation", err)
			}
			ok, err := sess.Verified(ctx)
			if err != nil {
				exitErr("check affirmation", err)
			}
			printGateStatus(cmd, ok, sess.State().Affirmation)
		},
	}

	affirmCmd := &cobra.Command{
		Use:   "affirm",
		Short: "Record an age affirmation valid for 30 days",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			s, err := openStore()
			if err != nil {
				exitErr("open store", err)
			}
			defer s.Close()

			sess, err := gate.NewSession(ctx, s)
			if err != nil {
				exitErr("load affirmation", err)
			}
			if _, err := sess.Affirm(ctx, nil); err != nil {
				exitErr("affirm", err)
			}
			logger.Info("age affirmed")
			printGateStatus(cmd, true, sess.State().Affirmation)
		},
	}

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Forget the stored age affirmation",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			s, err := openStore()
			if err != nil {
				exitErr("open store", err)
			}
			defer s.Close()

			sess, err := gate.NewSession(ctx, s)
			if err != nil {
				exitErr("load affirmation", err)
			}
			if err := sess.Reset(ctx); err != nil {
				exitErr("reset", err)
			}
			printGateStatus(cmd, false, nil)
		},
	}

	gateCmd.AddCommand(statusCmd, affirmCmd, resetCmd)
	RootCmd.AddCommand(gateCmd)
}

func printGateStatus(cmd *cobra.Command, ok bool, rec *model.Affirmation) {
	st := gateStatus{Verified: ok}
	if ok && rec != nil {
		at := rec.At().UTC()
		exp := at.Add(model.AffirmationTTL)
		st.AffirmedAt = &at
		st.ExpiresAt = &exp
	}

	if textOutput() {
		if !st.Verified {
			fmt.Fprintln(cmd.OutOrStdout(), "not verified")
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "verified until %s\n", st.ExpiresAt.Format(time.RFC3339))
		return
	}
	printJSON(cmd, st)
}
