package adapter

import (
	"reflect"
	"testing"
)

func TestParseQueueWeights(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want map[string]int
	}{
		{
			name: "weighted list",
			in:   "critical=6,default=3,low=1",
			want: map[string]int{"critical": 6, "default": 3, "low": 1},
		},
		{
			name: "missing weight defaults to one",
			in:   "default,reminders=2",
			want: map[string]int{"default": 1, "reminders": 2},
		},
		{
			name: "whitespace and empty parts ignored",
			in:   " default = 3 , , reminders=1 ",
			want: map[string]int{"default": 3, "reminders": 1},
		},
		{
			name: "invalid weight falls back to one",
			in:   "default=zero,low=-2",
			want: map[string]int{"default": 1, "low": 1},
		},
		{
			name: "empty string",
			in:   "",
			want: map[string]int{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseQueueWeights(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseQueueWeights(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
