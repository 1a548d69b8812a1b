package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"kickclock/internal/modules/practice/domain"
	practiceout "kickclock/internal/modules/practice/port/out"
	"kickclock/internal/platform/markdown"
	"kickclock/internal/platform/slug"
)

var resultsBlock = markdown.Block{Owner: "kickclock", Name: "results"}

type reportMeta struct {
	SchemaVersion int    `yaml:"schema_version"`
	ID            string `yaml:"id"`
	Team          string `yaml:"team,omitempty"`
	Title         string `yaml:"title"`
	Date          string `yaml:"date"`
	StartedAt     string `yaml:"started_at"`
	EndedAt       string `yaml:"ended_at"`
	Kicks         int    `yaml:"kicks"`
	FieldGoals    int    `yaml:"field_goals"`
	Punts         int    `yaml:"punts"`
	Kickoffs      int    `yaml:"kickoffs"`
}

// VaultReportWriter renders practice results as a markdown note. Rewriting a
// report only replaces the generated results block, so notes a coach added
// around it survive a second export.
type VaultReportWriter struct {
	dataPath string
	team     string
}

func NewVaultReportWriter(dataPath, team string) practiceout.ReportWriter {
	return &VaultReportWriter{dataPath: dataPath, team: team}
}

func (w *VaultReportWriter) Write(_ context.Context, practice domain.Practice, endedAt string) (string, error) {
	date := practice.StartedAt
	if d, err := time.Parse(domain.DateLayout, practice.Date); err == nil {
		date = d
	}
	dir := filepath.Join(w.dataPath, "practices", date.Format("2006"), date.Format("01"), date.Format("02"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	path := filepath.Join(dir, reportName(practice))

	counts := practice.Counts()
	meta := reportMeta{
		SchemaVersion: domain.SchemaVersion,
		ID:            practice.ID,
		Team:          w.team,
		Title:         practice.Title,
		Date:          practice.Date,
		StartedAt:     practice.StartedAt.Format(time.RFC3339),
		EndedAt:       endedAt,
		Kicks:         len(practice.Kicks),
		FieldGoals:    counts[domain.KickFieldGoal],
		Punts:         counts[domain.KickPunt],
		Kickoffs:      counts[domain.KickKickoff],
	}

	body := w.header(practice)
	if existing, err := os.ReadFile(path); err == nil {
		var prevMeta reportMeta
		prev, err := markdown.Split(string(existing), &prevMeta)
		if err != nil {
			return "", fmt.Errorf("read report %s: %w", path, err)
		}
		if prevMeta.ID != practice.ID {
			return "", fmt.Errorf("report %s belongs to practice %q", path, prevMeta.ID)
		}
		body = prev
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("read report: %w", err)
	}
	body = resultsBlock.Replace(body, RenderResults(practice))

	rendered, err := markdown.Render(meta, body)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

// reportName is the title slug suffixed with the head of the practice id, so
// practices sharing a date and title get separate files.
func reportName(practice domain.Practice) string {
	id := slug.Make(practice.ID, "")
	if len(id) > 8 {
		id = strings.TrimRight(id[:8], "-")
	}
	name := slug.Make(practice.Title, "practice-results")
	if id != "" {
		name += "-" + id
	}
	return name + ".md"
}

func (w *VaultReportWriter) header(practice domain.Practice) string {
	title := "Practice Results — " + practice.Date
	if w.team != "" {
		title = w.team + " " + title
	}
	var sb strings.Builder
	sb.WriteString("# " + title + "\n\n")
	if practice.Title != "" {
		sb.WriteString(practice.Title + "\n\n")
	}
	return sb.String()
}

// RenderResults renders one table per kick type that has kicks, in report
// order.
func RenderResults(practice domain.Practice) string {
	var sections []string
	for _, t := range domain.ReportOrder {
		kicks := practice.ByType(t)
		if len(kicks) == 0 {
			continue
		}
		head, rows := tableFor(t, kicks)
		sections = append(sections, "## "+string(t)+"\n\n"+table(head, rows))
	}
	return strings.Join(sections, "\n")
}

func tableFor(t domain.KickType, kicks []domain.Kick) ([]string, [][]string) {
	var head []string
	rows := make([][]string, 0, len(kicks))
	switch t {
	case domain.KickFieldGoal:
		head = []string{"Kick #", "Kicker", "Holder", "Snapper", "Yard Line", "Hash", "Distance", "Result", "Op Time"}
		for i, k := range kicks {
			fg := k.FieldGoal
			dist := fg.Distance
			if dist == "" {
				dist = domain.FieldGoalDistance(fg.YardLine)
			}
			rows = append(rows, []string{strconv.Itoa(i + 1), k.Kicker, k.Holder, k.Longsnapper, fg.YardLine, fg.Hash, dist, fg.Result, fg.OpTime})
		}
	case domain.KickPunt:
		head = []string{"Kick #", "Kicker", "Snapper", "Yard Line", "Hash", "Distance", "Location", "Snap", "Hand-to-foot", "Hang"}
		for i, k := range kicks {
			p := k.Punt
			rows = append(rows, []string{strconv.Itoa(i + 1), k.Kicker, k.Longsnapper, p.KickYardLine, p.KickLocation, p.Distance, p.Landing, p.Snap, p.HandToFoot, p.Hang})
		}
	case domain.KickKickoff:
		head = []string{"Kick #", "Kicker", "Yard Line", "Hash", "Distance", "Hang", "Location"}
		for i, k := range kicks {
			ko := k.Kickoff
			rows = append(rows, []string{strconv.Itoa(i + 1), k.Kicker, ko.YardLine, ko.Hash, ko.Distance, ko.HangTime, ko.Landing})
		}
	}
	return head, rows
}

func table(head []string, rows [][]string) string {
	var sb strings.Builder
	writeRow := func(cells []string) {
		sb.WriteString("|")
		for _, c := range cells {
			sb.WriteString(" " + cell(c) + " |")
		}
		sb.WriteString("\n")
	}
	writeRow(head)
	sep := make([]string, len(head))
	for i := range sep {
		sep[i] = "---"
	}
	writeRow(sep)
	for _, r := range rows {
		writeRow(r)
	}
	return sb.String()
}

func cell(s string) string {
	s = strings.ReplaceAll(strings.TrimSpace(s), "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
