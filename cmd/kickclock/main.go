package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"kickclock/internal/bootstrap"
	practicedomain "kickclock/internal/modules/practice/domain"
	practicedto "kickclock/internal/modules/practice/dto"
	"kickclock/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataPath string

	root := &cobra.Command{
		Use:           "kickclock",
		Short:         "Special-teams practice timer and kick log",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataPath, "data", ".", "data directory for practices and state")

	root.AddCommand(newTUICmd(&dataPath))
	root.AddCommand(newPracticeCmd(&dataPath))
	root.AddCommand(newKickCmd(&dataPath))
	return root
}

// withApp builds the app for one command and closes it afterwards.
func withApp(dataPath string, fn func(app *bootstrap.App) error) error {
	cfg, err := config.New(dataPath)
	if err != nil {
		return err
	}
	app, err := bootstrap.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()
	return fn(app)
}

func newTUICmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the sideline terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withApp(*dataPath, bootstrap.RunTUI)
		},
	}
}

func newPracticeCmd(dataPath *string) *cobra.Command {
	practice := &cobra.Command{Use: "practice", Short: "Practice lifecycle commands"}

	var title, date string
	startCmd := &cobra.Command{
		Use:   "start",
		Short: "Start a practice",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, func(app *bootstrap.App) error {
				out, err := app.PracticeCLI.Start(context.Background(), title, date)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "practice started %s (%s)\n", out.Date, out.ID)
				return nil
			})
		},
	}
	startCmd.Flags().StringVar(&title, "title", "", "practice title (optional)")
	startCmd.Flags().StringVar(&date, "date", "", "practice date YYYY-MM-DD (default today)")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the active practice",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, func(app *bootstrap.App) error {
				out, err := app.PracticeCLI.Active(context.Background())
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "id=%s date=%s title=%q started=%s\n",
					out.ID, out.Date, out.Title, out.StartedAt.Format("15:04:05"))
				_, _ = fmt.Fprintf(w, "kicks=%d %s\n", len(out.Kicks), formatCounts(out.Counts))
				for _, k := range out.Kicks {
					printKick(cmd, k)
				}
				return nil
			})
		},
	}

	endCmd := &cobra.Command{
		Use:   "end",
		Short: "End the active practice and write its report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, func(app *bootstrap.App) error {
				out, err := app.PracticeCLI.End(context.Background())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "practice %s ended: %d kicks report=%s\n", out.Date, out.Kicks, out.Path)
				return nil
			})
		},
	}

	practice.AddCommand(startCmd, showCmd, endCmd)
	return practice
}

// kickFlag binds one CLI flag to a form element id.
type kickFlag struct {
	name  string
	field string
	usage string
}

var commonKickFlags = []kickFlag{
	{"kicker", practicedomain.FieldKicker, "kicker name"},
	{"longsnapper", practicedomain.FieldLongsnapper, "longsnapper name"},
	{"holder", practicedomain.FieldHolder, "holder name"},
}

func newKickCmd(dataPath *string) *cobra.Command {
	kick := &cobra.Command{Use: "kick", Short: "Log and query kicks"}

	kick.AddCommand(newLogKickCmd(dataPath, "fg", "Log a field goal", []kickFlag{
		{"yard-line", practicedomain.FieldFGYardLine, "signed yard line (-N own, N opponent)"},
		{"hash", practicedomain.FieldFGHash, "hash: L|M|R"},
		{"op-time", practicedomain.FieldFGOpTime, "operation time in seconds"},
		{"result", practicedomain.FieldFGResult, "result"},
	}))
	kick.AddCommand(newLogKickCmd(dataPath, "ko", "Log a kickoff", []kickFlag{
		{"yard-line", practicedomain.FieldKOYardLine, "signed kick yard line"},
		{"hash", practicedomain.FieldKOHash, "hash: L|M|R"},
		{"result-yard-line", practicedomain.FieldKOResultYardLine, "signed yard line where the ball ended"},
		{"location", practicedomain.FieldKOLocation, "landing location"},
		{"hang-time", practicedomain.FieldKOHangTime, "hang time in seconds"},
	}))
	kick.AddCommand(newLogKickCmd(dataPath, "punt", "Log a punt", []kickFlag{
		{"yard-line", practicedomain.FieldPuntKickYardLine, "signed kick yard line"},
		{"kick-location", practicedomain.FieldPuntKickLocation, "kick location"},
		{"landed-yard-line", practicedomain.FieldPuntLandedYardLine, "signed landing yard line"},
		{"landed-location", practicedomain.FieldPuntLandedLocation, "landing location"},
		{"snap", practicedomain.FieldPuntSnap, "snap time in seconds"},
		{"hand-to-foot", practicedomain.FieldPuntHandToFoot, "hand-to-foot time in seconds"},
		{"hang", practicedomain.FieldPuntHang, "hang time in seconds"},
	}))

	var practiceID string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List indexed kicks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, func(app *bootstrap.App) error {
				kicks, err := app.PracticeCLI.ListKicks(context.Background(), practiceID)
				if err != nil {
					return err
				}
				if len(kicks) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no kicks")
					return nil
				}
				for _, k := range kicks {
					printKick(cmd, k)
				}
				return nil
			})
		},
	}
	listCmd.Flags().StringVar(&practiceID, "practice-id", "", "only kicks from this practice")

	kick.AddCommand(listCmd)
	return kick
}

func newLogKickCmd(dataPath *string, kickType, short string, specific []kickFlag) *cobra.Command {
	flags := append(append([]kickFlag{}, commonKickFlags...), specific...)
	values := make([]string, len(flags))

	cmd := &cobra.Command{
		Use:   kickType,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form := make(map[string]string, len(flags))
			for i, f := range flags {
				form[f.field] = values[i]
			}
			return withApp(*dataPath, func(app *bootstrap.App) error {
				out, err := app.PracticeCLI.LogKick(context.Background(), kickType, form)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged #%d %s (%s)", out.Seq, out.Type, out.ID)
				if out.Distance != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), " distance=%s", out.Distance)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout())
				return nil
			})
		},
	}
	for i, f := range flags {
		cmd.Flags().StringVar(&values[i], f.name, "", f.usage)
	}
	return cmd
}

func printKick(cmd *cobra.Command, k practicedto.KickOutput) {
	keys := make([]string, 0, len(k.Detail))
	for key, v := range k.Detail {
		if v != "" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	details := make([]string, len(keys))
	for i, key := range keys {
		details[i] = key + "=" + k.Detail[key]
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s #%d\t%s\tkicker=%s\tyl=%s\tdist=%s\t%s\n",
		k.PracticeID, k.Seq, k.Type, k.Kicker, k.YardLine, k.Distance, strings.Join(details, " "))
}

func formatCounts(counts map[string]int) string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", strings.ReplaceAll(strings.ToLower(k), " ", "_"), counts[k])
	}
	return strings.Join(parts, " ")
}
