package firestore_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/riskboard/pkg/repository/firestore"
)

func TestValidDocID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"uuid", "5f0c6d8e-2b7a-4c1e-9a55-0d7f3b1c2e4a", true},
		{"plain word", "scenario", true},
		{"empty", "", false},
		{"nested path", "risk_tables/other", false},
		{"leading slash", "/abc", false},
		{"dot", ".", false},
		{"double dot", "..", false},
		{"reserved", "__name__", false},
		{"too long", strings.Repeat("a", 1501), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, firestore.ValidDocID(tt.id)).Equal(tt.want)
		})
	}
}
