package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/neonleaf/neonleaf-go/lib/document"
	"github.com/neonleaf/neonleaf-go/lib/models/version"
	"github.com/spf13/cobra"
)

type inspectOptions struct {
	search     string
	version    string
	from       string
	to         string
	hasContent string
	page       int
	pageSize   int
}

func newInspectCommand() *cobra.Command {
	opts := &inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print one filtered page of a version file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.OutOrStdout(), args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.search, "search", "", "case-insensitive substring of the version")
	flags.StringVar(&opts.version, "version", "", "exact version")
	flags.StringVar(&opts.from, "from", "", "earliest date, YYYY-MM-DD")
	flags.StringVar(&opts.to, "to", "", "latest date, YYYY-MM-DD")
	flags.StringVar(&opts.hasContent, "has-content", "all", "yes, no or all")
	flags.IntVar(&opts.page, "page", 1, "page to print, clamped into range")
	flags.IntVar(&opts.pageSize, "page-size", document.DefaultPageSize, "records per page")
	return cmd
}

func runInspect(w io.Writer, path string, opts *inspectOptions) error {
	records, err := readRecords(path)
	if err != nil {
		return err
	}
	hasContent, err := version.ParseHasContent(opts.hasContent)
	if err != nil {
		return err
	}
	spec := version.FilterSpec{
		Search:          opts.search,
		SelectedVersion: opts.version,
		DateFrom:        opts.from,
		DateTo:          opts.to,
		HasContent:      hasContent,
	}

	page := document.BuildPage(records, spec, opts.pageSize, opts.page)
	if page.Total == 0 {
		fmt.Fprintln(w, "No versions match the current filters.")
		return nil
	}
	for _, record := range page.Items {
		writeRecord(w, record)
	}
	fmt.Fprintf(w, "Page %d of %d (%d of %d records)\n", page.Page, page.TotalPages, page.Total, len(records))
	return nil
}

func writeRecord(w io.Writer, record version.VersionRecord) {
	fmt.Fprintf(w, "%s  %s\n", record.Version, record.Date)
	if !record.HasContent() {
		fmt.Fprintln(w, "  (no content)")
		return
	}
	for _, item := range record.Content {
		fmt.Fprintf(w, "  - %s\n", strings.TrimSpace(item))
	}
}

func readRecords(path string) ([]version.VersionRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return document.Parse(string(raw))
}
