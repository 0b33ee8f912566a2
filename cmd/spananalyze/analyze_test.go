package main

import "testing"

func TestAnalyzeCommand(t *testing.T) {
	tests := []struct {
		name        string
		fixture     string
		wantJSON    bool
		wantErr     bool
		wantContain []string
	}{
		{
			name:        "adjacent members merge into a slice",
			fixture:     "testdata/adjacent_members.json",
			wantContain: []string{"Slice", "2", "3"},
		},
		{
			name:        "unsized span with a range entry, JSON output",
			fixture:     "testdata/unsized_span.json",
			wantJSON:    true,
			wantContain: []string{"allSpecified"},
		},
		{
			name:    "missing fixture fails",
			fixture: "testdata/does_not_exist.json",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quiet = false
			verbose = false
			jsonOut = tt.wantJSON

			output, err := captureOutput(t, func() error {
				return runAnalyze([]string{tt.fixture}, false, false)
			})

			if (err != nil) != tt.wantErr {
				t.Fatalf("runAnalyze() error = %v, wantErr %v\nOutput: %s", err, tt.wantErr, output)
			}
			if tt.wantErr {
				return
			}
			if tt.wantJSON {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
		})
	}
}
