package main

import (
	"fmt"
	"io"

	"github.com/chriscorrea/textutils/internal/codec"
	"github.com/chriscorrea/textutils/internal/counter"
	"github.com/chriscorrea/textutils/internal/transform"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

func newOpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List transformations, formats, digests, and counting methods",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			writeOps(cmd.OutOrStdout())
		},
	}
}

func writeOps(w io.Writer) {
	var ops [][2]string
	for _, op := range transform.Operations() {
		ops = append(ops, [2]string{op.String(), op.Description()})
	}
	writeSection(w, "Transformations (textutils transform <name>)", ops)

	var formats [][2]string
	for _, f := range codec.Formats() {
		formats = append(formats, [2]string{f.String(), "encode and decode"})
	}
	writeSection(w, "Formats (textutils encode|decode <name>)", formats)

	var digests [][2]string
	for _, a := range codec.Algorithms() {
		digests = append(digests, [2]string{a.String(), "one-way, lowercase hex"})
	}
	writeSection(w, "Digests (textutils digest <name>)", digests)

	var methods [][2]string
	for _, m := range counter.Methods() {
		methods = append(methods, [2]string{m.String(), ""})
	}
	writeSection(w, "Counting methods (textutils count --method <name>)", methods)
}

func writeSection(w io.Writer, title string, rows [][2]string) {
	width := 0
	for _, r := range rows {
		width = max(width, runewidth.StringWidth(r[0]))
	}

	fmt.Fprintln(w, title)
	for _, r := range rows {
		if r[1] == "" {
			fmt.Fprintf(w, "  %s\n", r[0])
			continue
		}
		fmt.Fprintf(w, "  %s  %s\n", runewidth.FillRight(r[0], width), r[1])
	}
	fmt.Fprintln(w)
}
