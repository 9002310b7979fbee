package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/fix"
)

func TestCollectTables(t *testing.T) {
	tests := []struct {
		which string
		names []string
		sizes []int
	}{
		{"all", []string{"cos", "tan", "acos"}, []int{512, 256, 513}},
		{"cos", []string{"cos"}, []int{512}},
		{"tan", []string{"tan"}, []int{256}},
		{"acos", []string{"acos"}, []int{513}},
	}

	for _, tt := range tests {
		t.Run(tt.which, func(t *testing.T) {
			tables, err := collectTables(tt.which)
			if err != nil {
				t.Fatalf("collectTables(%q) error = %v", tt.which, err)
			}
			var names []string
			var sizes []int
			for _, tb := range tables {
				names = append(names, tb.Name)
				sizes = append(sizes, len(tb.Entries))
			}
			if diff := cmp.Diff(tt.names, names); diff != "" {
				t.Errorf("names mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.sizes, sizes); diff != "" {
				t.Errorf("sizes mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if _, err := collectTables("sinh"); err == nil {
		t.Error("collectTables(sinh) should fail")
	}
}

func TestWriteTablesTOML(t *testing.T) {
	var buf bytes.Buffer
	if err := writeTables(&buf, "tan", "toml", "en"); err != nil {
		t.Fatalf("writeTables error = %v", err)
	}

	var doc tablesDocument
	if _, err := toml.Decode(buf.String(), &doc); err != nil {
		t.Fatalf("decode TOML: %v", err)
	}
	want, _ := collectTables("tan")
	if diff := cmp.Diff(tablesDocument{Tables: want}, doc); diff != "" {
		t.Errorf("TOML round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteTablesYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := writeTables(&buf, "acos", "yaml", "en"); err != nil {
		t.Fatalf("writeTables error = %v", err)
	}

	var doc tablesDocument
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("decode YAML: %v", err)
	}
	if len(doc.Tables) != 1 || doc.Tables[0].Name != "acos" {
		t.Fatalf("decoded tables = %+v", doc.Tables)
	}
	first := doc.Tables[0].Entries[0]
	if first.Raw != int32(fix.HalfTurn) || first.Value != 128 {
		t.Errorf("acos[0] = %+v, want raw %d value 128", first, fix.HalfTurn)
	}
}

func TestWriteTablesText(t *testing.T) {
	var buf bytes.Buffer
	if err := writeTables(&buf, "cos", "text", "en"); err != nil {
		t.Fatalf("writeTables error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1+fix.CosTableSize {
		t.Fatalf("got %d lines, want %d", len(lines), 1+fix.CosTableSize)
	}
	if lines[0] != "# cos (512 entries)" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "1.00000") || !strings.Contains(lines[1], "65,536") {
		t.Errorf("first row = %q, want value 1.00000 and raw 65,536", lines[1])
	}
}

func TestWriteTablesErrors(t *testing.T) {
	var buf bytes.Buffer
	if err := writeTables(&buf, "cos", "csv", "en"); err == nil {
		t.Error("unknown format should fail")
	}
	if err := writeTables(&buf, "cos", "text", "not a tag!"); err == nil {
		t.Error("invalid language tag should fail")
	}
}
