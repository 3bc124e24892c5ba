package cmd

import "testing"

func TestAddCmd_Structure(t *testing.T) {
	if addCmd.Use != "add [title]" {
		t.Errorf("addCmd.Use = %q, want %q", addCmd.Use, "add [title]")
	}
	if addCmd.Args == nil {
		t.Error("addCmd.Args should be set")
	}

	for flag, shorthand := range map[string]string{
		"description": "d",
		"categories":  "c",
		"due":         "",
	} {
		f := addCmd.Flags().Lookup(flag)
		if f == nil {
			t.Errorf("addCmd should have --%s flag", flag)
			continue
		}
		if f.Shorthand != shorthand {
			t.Errorf("%s flag shorthand = %q, want %q", flag, f.Shorthand, shorthand)
		}
	}
}

func TestAddCmd_ValidateArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"no args", []string{}, true},
		{"single word", []string{"task"}, false},
		{"multi word", []string{"my", "task", "name"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := addCmd.Args(addCmd, tt.args)
			if tt.wantErr && err == nil {
				t.Error("expected error but got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestListCmd_Structure(t *testing.T) {
	for _, flag := range []string{"filter", "sort", "search", "category"} {
		if listCmd.Flags().Lookup(flag) == nil {
			t.Errorf("listCmd should have --%s flag", flag)
		}
	}
}

func TestExportCmd_Structure(t *testing.T) {
	format := exportCmd.Flags().Lookup("format")
	if format == nil {
		t.Fatal("exportCmd should have --format flag")
	}
	if format.DefValue != "json" {
		t.Errorf("format default = %q, want %q", format.DefValue, "json")
	}
	if exportCmd.Flags().Lookup("output") == nil {
		t.Error("exportCmd should have --output flag")
	}
}
