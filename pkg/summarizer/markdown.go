package summarizer

import (
	"fmt"
	"strings"
)

// MarkdownFormatter formats a Summary as a Markdown document.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format converts the summary to Markdown.
func (f *MarkdownFormatter) Format(summary *Summary) string {
	var b strings.Builder

	b.WriteString("# Bitrate Analysis Summary\n\n")
	fmt.Fprintf(&b, "Generated at %s\n\n", summary.GeneratedAt.Format("2006-01-02 15:04:05"))

	b.WriteString("## Input\n\n")
	fmt.Fprintf(&b, "- File: %s\n", summary.Input.Path)
	fmt.Fprintf(&b, "- Resolution: %dx%d\n", summary.Input.Width, summary.Input.Height)
	fmt.Fprintf(&b, "- Decoded frames: %d\n", summary.Input.FrameCount)
	fmt.Fprintf(&b, "- Packets read: %d\n", summary.Input.PacketsRead)
	if summary.Input.PacketsSkipped > 0 {
		fmt.Fprintf(&b, "- Packets skipped: %d\n", summary.Input.PacketsSkipped)
	}
	b.WriteString("\n")

	b.WriteString("## Series\n\n")
	fmt.Fprintf(&b, "- Unit: %s\n", summary.Series.Unit)
	fmt.Fprintf(&b, "- Max: %s\n", formatValue(summary.Series.Max))
	fmt.Fprintf(&b, "- Mean: %s\n", formatValue(summary.Series.Mean))
	b.WriteString("\n")

	b.WriteString("## Output\n\n")
	fmt.Fprintf(&b, "- File: %s\n", summary.Output.Path)
	fmt.Fprintf(&b, "- Canvas: %dx%d\n", summary.Output.Width, summary.Output.Height)
	fmt.Fprintf(&b, "- Format: %s\n", summary.Output.Format)
	fmt.Fprintf(&b, "- Size: %s\n", formatBytes(summary.Output.FileSize))

	return b.String()
}

// formatValue trims trailing noise from series values: integral values print
// without decimals, small per-pixel values keep three.
func formatValue(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%.0f", v)
	}
	if v < 1 {
		return fmt.Sprintf("%.3f", v)
	}
	return fmt.Sprintf("%.1f", v)
}

// formatBytes renders a byte count in a human-readable unit.
func formatBytes(n int64) string {
	switch {
	case n >= 1024*1024:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	case n >= 1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}

// Ensure MarkdownFormatter implements Formatter.
var _ Formatter = (*MarkdownFormatter)(nil)
