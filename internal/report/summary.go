package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/nao1215/congestionscan/internal/model"
)

// SummaryWriter outputs a run summary in Markdown format.
type SummaryWriter struct {
	// output receives the rendered markdown.
	output io.Writer
}

// NewSummaryWriter creates a SummaryWriter that outputs to the given writer.
func NewSummaryWriter(output io.Writer) *SummaryWriter {
	return &SummaryWriter{output: output}
}

// Write renders the run summary.
func (w *SummaryWriter) Write(summary *model.RunSummary) error {
	md := markdown.NewMarkdown(w.output)

	md.H1("Congestion Scan Summary")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Run started", summary.Started.Format("2006-01-02 15:04:05 MST")},
			{"Lookback", strconv.Itoa(summary.Months) + " months (30-day windows)"},
			{"Pairs processed", strconv.Itoa(len(summary.Pairs))},
			{"Total events", strconv.Itoa(summary.TotalEvents())},
		},
	})
	md.PlainText("")

	w.writePairs(md, summary)

	return md.Build()
}

// writePairs renders one section per near network with its pair outcomes.
func (w *SummaryWriter) writePairs(md *markdown.Markdown, summary *model.RunSummary) {
	// Preserve processing order while grouping by near network.
	order := make([]string, 0)
	grouped := make(map[string][]model.PairResult)
	for _, p := range summary.Pairs {
		if _, ok := grouped[p.Near.ASN]; !ok {
			order = append(order, p.Near.ASN)
		}
		grouped[p.Near.ASN] = append(grouped[p.Near.ASN], p)
	}

	for _, nearASN := range order {
		pairs := grouped[nearASN]

		md.H2(pairs[0].Near.Name + " (AS" + nearASN + ")")
		md.PlainText("")

		rows := make([][]string, 0, len(pairs))
		for _, p := range pairs {
			rows = append(rows, []string{
				"AS" + p.Far.ASN,
				p.Far.Name,
				strconv.Itoa(p.Events),
				pairStatus(p),
			})
		}

		md.Table(markdown.TableSet{
			Header: []string{"Far ASN", "Name", "Events", "Status"},
			Rows:   rows,
		})
		md.PlainText("")
	}
}

// pairStatus distinguishes clean zero-event pairs from failed ones.
func pairStatus(p model.PairResult) string {
	if p.Err != nil {
		return "skipped: " + p.Err.Error()
	}
	if p.Events == 0 {
		return "no congestion"
	}
	return "congestion detected"
}
