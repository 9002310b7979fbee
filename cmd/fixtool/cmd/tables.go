package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/fix"
)

var (
	tablesWhich  string
	tablesFormat string
	tablesLang   string
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Print or export the trigonometric lookup tables",
	Long: `Writes the cos (512 entries), tan (256 entries) and acos (513 entries)
tables to stdout.

Formats:
  text - aligned columns, numbers localized with --lang
  toml - [[table]] documents with [[table.entries]]
  yaml - a tables: sequence

Examples:
  fixtool tables --table cos
  fixtool tables --format toml > tables.toml
  fixtool tables --table acos --lang de`,
	Args: cobra.NoArgs,
	RunE: runTables,
}

func init() {
	rootCmd.AddCommand(tablesCmd)

	tablesCmd.Flags().StringVarP(&tablesWhich, "table", "t", "all",
		"table to write (cos, tan, acos, all)")
	tablesCmd.Flags().StringVarP(&tablesFormat, "format", "f", "text",
		"output format (text, toml, yaml)")
	tablesCmd.Flags().StringVar(&tablesLang, "lang", "en",
		"BCP 47 language tag for text output")
}

type tableEntry struct {
	Index int     `toml:"index" yaml:"index"`
	Raw   int32   `toml:"raw" yaml:"raw"`
	Value float64 `toml:"value" yaml:"value"`
}

type tableExport struct {
	Name    string       `toml:"name" yaml:"name"`
	Size    int          `toml:"size" yaml:"size"`
	Entries []tableEntry `toml:"entries" yaml:"entries"`
}

type tablesDocument struct {
	Tables []tableExport `toml:"table" yaml:"tables"`
}

func newTableExport(name string, values []fix.Fixed) tableExport {
	t := tableExport{Name: name, Size: len(values), Entries: make([]tableEntry, len(values))}
	for i, v := range values {
		t.Entries[i] = tableEntry{Index: i, Raw: int32(v), Value: v.Float()}
	}
	return t
}

// collectTables selects the requested tables in cos, tan, acos order.
func collectTables(which string) ([]tableExport, error) {
	cos := fix.CosTable()
	tan := fix.TanTable()
	acos := fix.AcosTable()

	all := []tableExport{
		newTableExport("cos", cos[:]),
		newTableExport("tan", tan[:]),
		newTableExport("acos", acos[:]),
	}
	if which == "all" {
		return all, nil
	}
	for _, t := range all {
		if t.Name == which {
			return []tableExport{t}, nil
		}
	}
	return nil, fmt.Errorf("unknown table %q (want cos, tan, acos or all)", which)
}

func writeTables(w io.Writer, which, format, lang string) error {
	tables, err := collectTables(which)
	if err != nil {
		return err
	}
	doc := tablesDocument{Tables: tables}

	switch format {
	case "toml":
		return toml.NewEncoder(w).Encode(doc)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		tag, err := language.Parse(lang)
		if err != nil {
			return fmt.Errorf("language %q: %w", lang, err)
		}
		return writeText(w, message.NewPrinter(tag), doc)
	default:
		return fmt.Errorf("unknown format %q (want text, toml or yaml)", format)
	}
}

func writeText(w io.Writer, p *message.Printer, doc tablesDocument) error {
	for _, t := range doc.Tables {
		if _, err := p.Fprintf(w, "# %s (%d entries)\n", t.Name, t.Size); err != nil {
			return err
		}
		for _, e := range t.Entries {
			if _, err := p.Fprintf(w, "%4d  %14.5f  %13d\n", e.Index, e.Value, e.Raw); err != nil {
				return err
			}
		}
	}
	return nil
}

func runTables(cmd *cobra.Command, args []string) error {
	if err := writeTables(os.Stdout, tablesWhich, tablesFormat, tablesLang); err != nil {
		printError("tables", err)
		return err
	}
	return nil
}
