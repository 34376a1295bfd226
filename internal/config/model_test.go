package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		other *Settings
		want  *Settings
	}{
		{
			name:  "nil leaves defaults",
			other: nil,
			want:  Default(),
		},
		{
			name:  "empty leaves defaults",
			other: &Settings{},
			want:  Default(),
		},
		{
			name: "non-zero fields override",
			other: &Settings{
				Prompt:   "roster> ",
				DataFile: "students.xml",
				Log:      Log{Level: "debug", MaxBackups: 7},
			},
			want: &Settings{
				Prompt:   "roster> ",
				DataFile: "students.xml",
				Log: Log{
					File:       "students.log",
					Level:      "debug",
					Format:     "text",
					MaxSizeMB:  10,
					MaxBackups: 7,
				},
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Default()
			got.Merge(tc.other)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
