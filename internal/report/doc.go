// Package report provides report generation and output functionality.
//
// This package contains the output side of a run:
//   - WorkbookWriter: one spreadsheet workbook per near network, one sheet
//     per far network with detected events
//   - SummaryWriter: a Markdown summary of the whole run
//
// Design decision: We separate report writing from the report data
// structures (which are in the model package) so that row accumulation is
// decoupled from the file-writing collaborator entirely. The pipeline never
// touches a workbook; it hands finished Report values to a writer.
package report
