package entity

import (
	"reflect"
	"testing"
	"time"
)

func TestNewHistoryEntryFormat(t *testing.T) {
	p := Product{Name: "Sneaker One", Brand: "BrandX", Category: "Shoes", Price: 500, Rating: 4.5}
	stamp := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	entry := NewHistoryEntry(p, stamp)
	if entry.SavedAt != "2026-08-01 10:00:00" {
		t.Fatalf("SavedAt: got %q", entry.SavedAt)
	}
	if entry.Product != p {
		t.Fatalf("Product: got %+v, want %+v", entry.Product, p)
	}
}

func TestDedupHistory(t *testing.T) {
	p := Product{Name: "Sneaker One", Brand: "BrandX", Category: "Shoes", Price: 500, Rating: 4.5}
	a := HistoryEntry{Product: p, SavedAt: "2026-08-01 10:00:00"}
	b := HistoryEntry{Product: p, SavedAt: "2026-08-01 10:05:00"}
	c := HistoryEntry{Product: Product{Name: "Denim Jacket", Brand: "BrandZ", Category: "Jacket", Price: 1200, Rating: 4.1}, SavedAt: "2026-08-01 10:00:00"}

	tests := []struct {
		name string
		in   []HistoryEntry
		want []HistoryEntry
	}{
		{"exact duplicate removed", []HistoryEntry{a, c, a}, []HistoryEntry{a, c}},
		{"same product different stamp kept", []HistoryEntry{a, b}, []HistoryEntry{a, b}},
		{"first occurrence wins", []HistoryEntry{c, a, c, a}, []HistoryEntry{c, a}},
		{"empty input", nil, []HistoryEntry{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DedupHistory(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
