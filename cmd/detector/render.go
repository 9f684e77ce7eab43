package main

import (
	"fmt"
	"io"
	"strings"

	"toxic-lab/domain"
	"toxic-lab/services"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

const shownTerms = 10

var (
	toxicStyle = color.New(color.FgRed, color.OpBold)
	cleanStyle = color.New(color.FgGreen)
	titleStyle = color.New(color.BgBlack, color.FgCyan)
)

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func renderReport(w io.Writer, report services.TrainReport) {
	fmt.Fprintln(w, titleStyle.Render("  ====== Training ======  "))
	table := newTable(w, []string{"Samples", "Features", "Training accuracy", "Duration", "Heap (MB)", "RSS (MB)"})
	table.Append([]string{
		fmt.Sprint(report.Samples),
		fmt.Sprint(report.Features),
		fmt.Sprintf("%.2f%%", report.Accuracy*100),
		report.Duration.String(),
		fmt.Sprint(report.Resources.AllocMemMb),
		fmt.Sprint(report.Resources.RSSBytes / 1024 / 1024),
	})
	table.Render()

	top := report.Terms[:min(shownTerms, len(report.Terms))]
	fmt.Fprintf(w, "Top terms: %s\n\n", strings.Join(top, ", "))
}

func renderVerdicts(w io.Writer, verdicts []domain.Verdict) {
	fmt.Fprintln(w, titleStyle.Render("  ====== Verdicts ======  "))
	table := newTable(w, []string{"Comment", "Verdict", "Score", "Lang", "Blocked", "Censored"})
	table.AppendBulk(lo.Map(verdicts, func(v domain.Verdict, _ int) []string {
		return []string{
			v.Comment,
			verdictLabel(v),
			fmt.Sprintf("%.4f", v.Score),
			v.Lang,
			strings.Join(v.BlockedWords, ", "),
			v.Censored,
		}
	}))
	table.Render()
}

// verdictLabel flags a comment as toxic when either the model or the
// blocklist says so.
func verdictLabel(v domain.Verdict) string {
	if v.Toxic() {
		return toxicStyle.Render("Toxic")
	}
	return cleanStyle.Render("Clean")
}
