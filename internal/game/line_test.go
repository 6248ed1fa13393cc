package game

import (
	"testing"
)

func x() Cell { return ClaimedCell(PlayerX) }
func o() Cell { return ClaimedCell(PlayerO) }
func e(slot int) Cell { return EmptyCell(slot) }

func TestEvaluateWin(t *testing.T) {
	tests := []struct {
		name     string
		line     Line
		want     PlayerMark
		wantDone bool
	}{
		{name: "X fills the line", line: Line{x(), x(), x()}, want: PlayerX, wantDone: true},
		{name: "O fills a long line", line: Line{o(), o(), o(), o(), o()}, want: PlayerO, wantDone: true},
		{name: "Mixed marks", line: Line{x(), o(), x()}, want: None, wantDone: false},
		{name: "One free cell", line: Line{x(), x(), e(3)}, want: None, wantDone: false},
		{name: "Untouched line", line: Line{e(1), e(2), e(3)}, want: None, wantDone: false},
		{name: "Empty line", line: Line{}, want: None, wantDone: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := EvaluateWin(tt.line)
			if got != tt.want || ok != tt.wantDone {
				t.Errorf("EvaluateWin() got = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantDone)
			}
		})
	}
}

func TestEvaluateThreat(t *testing.T) {
	tests := []struct {
		name      string
		line      Line
		wantSlot  int
		wantFound bool
	}{
		{name: "Two X and a free end", line: Line{x(), x(), e(3)}, wantSlot: 3, wantFound: true},
		{name: "Two O around a free middle", line: Line{o(), e(5), o()}, wantSlot: 5, wantFound: true},
		{name: "Free start", line: Line{e(7), x(), x()}, wantSlot: 7, wantFound: true},
		{name: "Mixed marks and a free cell", line: Line{x(), o(), e(3)}, wantSlot: 0, wantFound: false},
		{name: "Single mark", line: Line{x(), e(2), e(3)}, wantSlot: 0, wantFound: false},
		{name: "Two distinct marks, no free cell", line: Line{x(), o(), x()}, wantSlot: 0, wantFound: false},
		{name: "Completed line", line: Line{x(), x(), x()}, wantSlot: 0, wantFound: false},
		{name: "Untouched line", line: Line{e(1), e(2), e(3)}, wantSlot: 0, wantFound: false},
		// Longer lines keep the two-distinct-values rule.
		{name: "Five cells, four X", line: Line{x(), x(), e(3), x(), x()}, wantSlot: 3, wantFound: true},
		{name: "Five cells, three X and two free", line: Line{x(), e(2), x(), e(4), x()}, wantSlot: 0, wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, found := EvaluateThreat(tt.line)
			if slot != tt.wantSlot || found != tt.wantFound {
				t.Errorf("EvaluateThreat() got = (%d, %v), want (%d, %v)", slot, found, tt.wantSlot, tt.wantFound)
			}
		})
	}
}
