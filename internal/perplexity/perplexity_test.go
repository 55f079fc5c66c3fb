package perplexity

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Record
		wantErr string
	}{
		{
			name: "typical record",
			line: "184.3\tthe quick brown fox\t(utt001)",
			want: Record{Perplexity: 184.3, Text: "the quick brown fox", ID: "utt001"},
		},
		{
			name: "integer-valued perplexity",
			line: "12\tc a t _ d o g\t(utt042)",
			want: Record{Perplexity: 12, Text: "c a t _ d o g", ID: "utt042"},
		},
		{
			name:    "too few fields",
			line:    "184.3\tno id field",
			wantErr: "tab-separated fields",
		},
		{
			name:    "too many fields",
			line:    "184.3\ttext\t(utt001)\textra",
			wantErr: "tab-separated fields",
		},
		{
			name:    "non-numeric perplexity",
			line:    "high\ttext\t(utt001)",
			wantErr: "parse perplexity value",
		},
		{
			name:    "unparenthesized id",
			line:    "184.3\ttext\tutt001",
			wantErr: "utterance id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.line)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("ParseLine(%q) expected error containing %q, got nil", tt.line, tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("ParseLine(%q) error = %v, want substring %q", tt.line, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLine(%q) unexpected error: %v", tt.line, err)
			}
			if got != tt.want {
				t.Errorf("ParseLine(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestReadFilePreservesOrder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "perplexity")
	content := "9.5\tz last alphabetically\t(utt03)\n" +
		"\n" +
		"120.0\ta first alphabetically\t(utt01)\n" +
		"3.2\tm middle\t(utt02)\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := []Record{
		{Perplexity: 9.5, Text: "z last alphabetically", ID: "utt03"},
		{Perplexity: 120.0, Text: "a first alphabetically", ID: "utt01"},
		{Perplexity: 3.2, Text: "m middle", ID: "utt02"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadFile = %+v, want %+v", got, want)
	}
}

func TestReadFileReportsLineNumber(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "perplexity")
	if err := os.WriteFile(path, []byte("1.0\tok\t(utt01)\nbroken line\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := ReadFile(path)
	if err == nil {
		t.Fatal("expected error for malformed line")
	}
	if !strings.Contains(err.Error(), ":2:") {
		t.Errorf("error should name line 2, got %v", err)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
