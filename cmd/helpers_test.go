package cmd

import (
	"strings"
	"testing"
	"time"

	"github.com/nvelasco/taskmaster-cli/internal/adapters/export"
)

func TestParseDueDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"date only", "2026-04-01", time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), false},
		{"date and time", "2026-04-01 09:30", time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC), false},
		{"rfc3339", "2026-04-01T09:30:00Z", time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC), false},
		{"nonsense", "next tuesday", time.Time{}, true},
		{"wrong order", "01-04-2026", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDueDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseDueDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !got.Equal(tt.want) {
				t.Errorf("parseDueDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitCategories(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "home", []string{"home"}},
		{"multiple", "home,work", []string{"home", "work"}},
		{"trims whitespace", " home , work ", []string{"home", "work"}},
		{"drops empty cells", "home,,work,", []string{"home", "work"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitCategories(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("splitCategories(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("splitCategories(%q) = %v, want %v", tt.input, got, tt.want)
				}
			}
		})
	}
}

func TestShortID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{"uuid", "3e3f9cbe-6f2c-4d11-8a40-9a62c8f0a8d3", "3e3f9cbe"},
		{"exactly eight", "12345678", "12345678"},
		{"single char", "1", "1"},
		{"empty", "", ""},
		{"multibyte", "αβγδεζηθικλ", "αβγδεζηθ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shortID(tt.id); got != tt.want {
				t.Errorf("shortID(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestShortID_ListsImportedTask(t *testing.T) {
	// Imported payloads can carry IDs shorter than the generated uuids,
	// and listing them must not slice past the end of the string.
	payload := `{"tasks":[{"id":"1","title":"Pay rent","completed":false,"createdAt":"2026-04-01T09:30:00.000Z"}],"categories":[],"version":"1.0"}`

	imported, err := export.ImportJSON(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("ImportJSON() error = %v", err)
	}
	if len(imported.Tasks) != 1 {
		t.Fatalf("ImportJSON() returned %d tasks, want 1", len(imported.Tasks))
	}

	line := shortID(imported.Tasks[0].ID) + "  " + imported.Tasks[0].Title
	if !strings.HasPrefix(line, "1  ") {
		t.Errorf("listed line = %q, want prefix %q", line, "1  ")
	}
}

func TestJoinArgs(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"Buy", "milk"}, "Buy milk"},
		{[]string{"single"}, "single"},
		{[]string{"  padded  "}, "padded"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := joinArgs(tt.args); got != tt.want {
				t.Errorf("joinArgs(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
