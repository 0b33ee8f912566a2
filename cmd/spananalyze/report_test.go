package main

import "testing"

func TestReportCommand(t *testing.T) {
	tests := []struct {
		name        string
		fixture     string
		wantContain []string
	}{
		{
			name:        "adjacent members synthesize a three-term concat",
			fixture:     "testdata/adjacent_members.json",
			wantContain: []string{"++"},
		},
		{
			name:        "unsized span pads with a cast aggregate",
			fixture:     "testdata/unsized_span.json",
			wantContain: []string{"cast"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quiet = false
			verbose = false
			jsonOut = false

			output, err := captureOutput(t, func() error {
				return runReport([]string{tt.fixture})
			})
			if err != nil {
				t.Fatalf("runReport() error = %v\nOutput: %s", err, output)
			}
			assertContains(t, output, tt.wantContain)
		})
	}
}
