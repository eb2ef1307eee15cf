package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateExportFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"dot", false},
		{"svg", false},
		{"png", false},
		{"pdf", true},
		{"", true},
		{"DOT", true},
	}

	for _, tt := range tests {
		err := validateExportFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("validateExportFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestRunExportDOT(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "in.json", `{"a": 1}`)
	nquads := filepath.Join(dir, "mid.nq")
	if err := runConvert(context.Background(), input, nquads, &convertOpts{}); err != nil {
		t.Fatalf("runConvert: %v", err)
	}

	output := filepath.Join(dir, "out.dot")
	opts := &exportOpts{format: formatDOT}
	if err := runExport(context.Background(), nquads, output, opts); err != nil {
		t.Fatalf("runExport: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	dot := string(data)
	if !strings.HasPrefix(dot, "digraph ") {
		t.Errorf("output is not DOT:\n%s", dot)
	}
	// {"a": 1} converts to 3 statements, so 3 edges.
	if n := strings.Count(dot, "->"); n != 3 {
		t.Errorf("edge count = %d, want 3", n)
	}
	if !strings.Contains(dot, `label="property/a"`) {
		t.Errorf("missing property edge label:\n%s", dot)
	}
}

func TestRunExportMissingInput(t *testing.T) {
	dir := t.TempDir()

	opts := &exportOpts{format: formatDOT}
	err := runExport(context.Background(),
		filepath.Join(dir, "absent.nq"), filepath.Join(dir, "out.dot"), opts)
	if err == nil {
		t.Fatal("expected error for missing input")
	}
	if !strings.Contains(err.Error(), "read input") {
		t.Errorf("err = %v, want the read stage named", err)
	}
}

func TestRunExportMalformedInput(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "bad.nq", "not nquads at all\n")

	opts := &exportOpts{format: formatDOT}
	err := runExport(context.Background(), input, filepath.Join(dir, "out.dot"), opts)
	if err == nil {
		t.Fatal("expected error for malformed N-Quads")
	}
}
