package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rcliao/sfx-library/internal/gate"
	"github.com/rcliao/sfx-library/internal/model"
)

const agePrompt = "Some results are marked NSFW. Are you 18 or older? [y/N]: "

var stdinIsTerminal = func() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// addGateFlags registers the flags that answer the age prompt up front.
func addGateFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("affirm", false, "Answer yes to the age prompt")
	cmd.Flags().Bool("decline", false, "Answer no to the age prompt")
	cmd.MarkFlagsMutuallyExclusive("affirm", "decline")
}

type answer int

const (
	answerNone answer = iota
	answerYes
	answerNo
)

func gateAnswer(cmd *cobra.Command) answer {
	if ok, _ := cmd.Flags().GetBool("affirm"); ok {
		return answerYes
	}
	if ok, _ := cmd.Flags().GetBool("decline"); ok {
		return answerNo
	}
	return answerNone
}

// runGated loads the library, runs the action through the age gate and
// prints whatever the gate lets through.
func runGated(cmd *cobra.Command, action gate.Action) {
	ctx := cmd.Context()
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	sounds, err := s.ListSounds(ctx)
	if err != nil {
		exitErr("list sounds", err)
	}

	sess, err := gate.NewSession(ctx, s)
	if err != nil {
		exitErr("load affirmation", err)
	}

	out, err := sess.Attempt(ctx, sounds, action)
	if err != nil {
		exitErr("gate", err)
	}
	if out.AffirmationCleared {
		logger.Info("stale affirmation cleared")
	}

	if out.Awaiting {
		logger.Debug("action awaiting affirmation",
			zap.String("kind", action.Kind.String()), zap.String("term", action.Term))
		out, err = resolve(cmd, sess, sounds)
		if err != nil {
			exitErr("gate", err)
		}
	}

	if textOutput() {
		writeOutcome(cmd.OutOrStdout(), out)
		return
	}
	if out.Results == nil {
		out.Results = []model.Sound{}
	}
	printJSON(cmd, out)
}

func resolve(cmd *cobra.Command, sess *gate.Session, sounds []model.Sound) (gate.Outcome, error) {
	ans := gateAnswer(cmd)
	if ans == answerNone {
		if !stdinIsTerminal() {
			logger.Debug("no terminal for age prompt, dismissing")
			return sess.Dismiss(sounds), nil
		}
		ok, err := promptYesNo(cmd.InOrStdin(), cmd.ErrOrStderr(), agePrompt)
		if err != nil {
			return gate.Outcome{}, err
		}
		ans = answerNo
		if ok {
			ans = answerYes
		}
	}

	if ans == answerYes {
		logger.Info("age affirmed")
		return sess.Affirm(cmd.Context(), sounds)
	}
	logger.Info("age affirmation declined")
	return sess.Decline(sounds), nil
}

// promptYesNo asks a question and reads one line. EOF counts as no.
func promptYesNo(in io.Reader, out io.Writer, question string) (bool, error) {
	fmt.Fprint(out, question)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("read answer: %w", err)
	}
	return isYes(line), nil
}

func isYes(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true
	}
	return false
}
