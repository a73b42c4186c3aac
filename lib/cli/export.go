package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/neonleaf/neonleaf-go/lib/document"
	"github.com/neonleaf/neonleaf-go/lib/models/version"
	"github.com/spf13/cobra"
)

func newExportCommand() *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Validate a version file and write it as <name>_edited.json",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.OutOrStdout(), args[0], outDir)
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory, defaults to the directory of FILE")
	return cmd
}

func runExport(w io.Writer, path string, outDir string) error {
	records, err := readRecords(path)
	if err != nil {
		return err
	}
	name := filepath.Base(path)
	content, err := document.Serialize(version.Document{Name: name, Records: records})
	if err != nil {
		return err
	}

	if outDir == "" {
		outDir = filepath.Dir(path)
	}
	target := filepath.Join(outDir, document.ExportFileName(name))
	if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
		return err
	}
	fmt.Fprintf(w, "Wrote %d records to %s\n", len(records), target)
	return nil
}
