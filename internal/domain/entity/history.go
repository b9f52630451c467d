package entity

import "time"

// SavedAtLayout tarix yozuvlaridagi vaqt formati
const SavedAtLayout = "2006-01-02 15:04:05"

// SavedAtMissing eski yozuvlarda SavedAt bo'lmasa ishlatiladigan qiymat
const SavedAtMissing = "N/A"

// HistoryEntry tarixga saqlangan mahsulot. Bitta saqlash amalidagi
// barcha yozuvlar bir xil SavedAt vaqtini oladi; dublikatlar
// SavedAt bilan birga BARCHA maydonlar teng bo'lsagina hisoblanadi.
type HistoryEntry struct {
	Product
	SavedAt string
}

// NewHistoryEntry mahsulotdan tarix yozuvi yaratish
func NewHistoryEntry(p Product, savedAt time.Time) HistoryEntry {
	return HistoryEntry{Product: p, SavedAt: savedAt.Format(SavedAtLayout)}
}

// DedupHistory dublikat yozuvlarni olib tashlash (birinchi uchragani qoladi)
func DedupHistory(entries []HistoryEntry) []HistoryEntry {
	seen := make(map[HistoryEntry]struct{}, len(entries))
	out := make([]HistoryEntry, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}
