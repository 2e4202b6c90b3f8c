package content

import (
	"reflect"
	"testing"
)

func TestParseList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"React, Node,  Teaching", []string{"React", "Node", "Teaching"}},
		{"solo", []string{"solo"}},
		{"a,,b,  ,c", []string{"a", "b", "c"}},
		{"", nil},
		{"  ,  ", nil},
	}
	for _, tt := range tests {
		if got := ParseList(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseList(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestJoinListRoundTrip(t *testing.T) {
	joined := JoinList([]string{"React", "Node", "Teaching"})
	if joined != "React, Node, Teaching" {
		t.Errorf("joined = %q", joined)
	}
	if got := ParseList(joined); !reflect.DeepEqual(got, []string{"React", "Node", "Teaching"}) {
		t.Errorf("round trip = %v", got)
	}
}
