// Package report renders analysis results in one of three formats.
//
// Markdown is the default and uses GitHub-flavored tables. Text pads labels
// by terminal display width. JSON emits one document per call for scripting.
//
// Usage Example:
//
//	w := report.NewWriter(report.Markdown, os.Stdout)
//	err := w.WriteStatistics(analysis.Analyze(text, 0))
package report
