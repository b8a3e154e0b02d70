package cli

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ccmap/pkg/graph"
	pkgio "github.com/matzehuels/ccmap/pkg/io"
	"github.com/matzehuels/ccmap/pkg/pipeline"
)

// stdoutPath selects the command's stdout as output.
const stdoutPath = "-"

// openOutput returns a writer for path. An empty path or "-" writes to the
// command's stdout.
func openOutput(cmd *cobra.Command, path string) (io.WriteCloser, error) {
	if path == "" || path == stdoutPath {
		return nopCloser{cmd.OutOrStdout()}, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	return os.Create(path)
}

// nopCloser wraps an io.Writer to add a no-op Close method.
type nopCloser struct{ io.Writer }

// Close implements io.Closer.
func (nopCloser) Close() error { return nil }

// writeOutput opens path and hands the writer to write.
func writeOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	out, err := openOutput(cmd, path)
	if err != nil {
		return err
	}
	if err := write(out); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	if path != "" && path != stdoutPath {
		printFile(path)
	}
	return nil
}

// writeJSON writes v as indented JSON.
func writeJSON(cmd *cobra.Command, path string, v any) error {
	return writeOutput(cmd, path, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	})
}

// writeGraph writes g as a graph document.
func writeGraph(cmd *cobra.Command, path string, g *graph.Graph) error {
	return writeOutput(cmd, path, func(w io.Writer) error {
		return pkgio.WriteJSON(g, w)
	})
}

// writeParts writes a node and link list as a graph document.
func writeParts(cmd *cobra.Command, path string, nodes []graph.Node, links []graph.Link) error {
	return writeOutput(cmd, path, func(w io.Writer) error {
		return pkgio.WriteParts(nodes, links, w)
	})
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
