package athena

import (
	"fmt"
	"strings"
	"time"

	"github.com/txn2/mcp-athena/pkg/query"
)

// nullLiteral is how NULL cells render in reports.
const nullLiteral = "NULL"

// formatOutcome renders a terminal query outcome as agent-readable text.
func formatOutcome(out *query.Outcome, previewRows int) string {
	switch out.Status.State {
	case query.StateSucceeded:
		return formatReport(out.Results, previewRows)
	case query.StateFailed:
		reason := out.Status.Reason
		if reason == "" {
			reason = "Unknown error"
		}
		return "Query failed: " + reason
	case query.StateCancelled:
		return "Query was cancelled."
	default:
		// Run only returns terminal outcomes; guard anyway.
		return fmt.Sprintf("Query finished in unexpected state: %s", out.Status.State)
	}
}

// formatReport renders a succeeded result set: column list, data row count,
// up to previewRows pipe-joined rows, and a note for rows beyond the
// preview. A result with no rows at all is reported as empty; a header-only
// result still renders columns with a zero row count.
func formatReport(rs *query.ResultSet, previewRows int) string {
	if rs == nil || len(rs.Rows) == 0 {
		return "Query executed successfully but returned no results."
	}

	var b strings.Builder
	b.WriteString("Query executed successfully!\n\n")
	b.WriteString("Columns: " + strings.Join(renderCells(rs.Rows[0]), ", ") + "\n\n")
	fmt.Fprintf(&b, "Results (%d rows):\n", rs.DataRowCount())

	data := rs.Rows[1:]
	shown := len(data)
	if shown > previewRows {
		shown = previewRows
	}
	for _, r := range data[:shown] {
		b.WriteString(strings.Join(renderCells(r), " | ") + "\n")
	}

	if len(data) > previewRows {
		fmt.Fprintf(&b, "\n... and %d more rows", len(data)-previewRows)
	}

	return b.String()
}

// formatTimeout renders an exhausted poll budget, including the last
// observed non-terminal state.
func formatTimeout(te *query.TimeoutError, interval time.Duration) string {
	elapsed := time.Duration(te.Attempts) * interval
	return fmt.Sprintf("Query timed out after %d seconds. Status: %s", int(elapsed.Seconds()), te.LastState)
}

// renderCells converts nullable cells to display strings.
func renderCells(row []*string) []string {
	cells := make([]string, len(row))
	for i, c := range row {
		if c == nil {
			cells[i] = nullLiteral
			continue
		}
		cells[i] = *c
	}
	return cells
}
