package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/rcliao/sfx-library/internal/gate"
	"github.com/rcliao/sfx-library/internal/model"
	"github.com/rcliao/sfx-library/internal/tags"
)

// displayTags formats a tag list for people.
func displayTags(tagList []string) []string {
	out := make([]string, 0, len(tagList))
	for _, t := range tagList {
		out = append(out, tags.FormatForDisplay(t))
	}
	return out
}

// displayEquipment capitalizes each comma-separated equipment entry.
func displayEquipment(equipment string) string {
	parts := strings.Split(equipment, ",")
	for i, p := range parts {
		parts[i] = tags.CapitalizeWords(strings.TrimSpace(p))
	}
	return strings.Join(parts, ", ")
}

func soundLine(s model.Sound) string {
	var b strings.Builder
	b.WriteString(tags.CapitalizeWords(s.Title))
	if len(s.Tags) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(displayTags(s.Tags), ", "))
	}
	var details []string
	if s.Equipment != nil {
		details = append(details, "Equipment: "+displayEquipment(*s.Equipment))
	}
	if s.Format != nil {
		details = append(details, "Format: "+strings.ToUpper(*s.Format))
	}
	if len(details) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(details, "; "))
	}
	fmt.Fprintf(&b, "\n    %s  %s", s.ID, s.AudioURL)
	return b.String()
}

func writeSounds(w io.Writer, sounds []model.Sound) {
	for _, s := range sounds {
		fmt.Fprintln(w, soundLine(s))
	}
}

func actionLabel(a gate.Action) string {
	switch a.Kind {
	case gate.KindQuery:
		return fmt.Sprintf("search %q", a.Term)
	case gate.KindTag:
		return "tag " + tags.FormatForDisplay(a.Term)
	case gate.KindViewAll:
		return "all sounds"
	}
	return a.Kind.String()
}

func writeOutcome(w io.Writer, out gate.Outcome) {
	if !out.Visible {
		fmt.Fprintf(w, "%s: nothing shown\n", actionLabel(out.Action))
		return
	}
	if len(out.Results) == 0 {
		fmt.Fprintf(w, "%s: no sounds found\n", actionLabel(out.Action))
		return
	}
	fmt.Fprintf(w, "%s: %d sound(s)\n", actionLabel(out.Action), len(out.Results))
	writeSounds(w, out.Results)
}
