package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boardWith places the given marks on a fresh board of size.
func boardWith(t *testing.T, size int, marks map[int]PlayerMark) *Board {
	t.Helper()
	b, err := NewBoard(size)
	require.NoError(t, err)
	for slot, mark := range marks {
		require.NoError(t, b.Place(slot, mark))
	}
	return b
}

func TestLines(t *testing.T) {
	b, _ := NewBoard(3)

	var got [][]string
	for _, line := range Lines(b) {
		got = append(got, slots(line))
	}

	assert.Equal(t, [][]string{
		{"1", "2", "3"}, {"1", "4", "7"},
		{"4", "5", "6"}, {"2", "5", "8"},
		{"7", "8", "9"}, {"3", "6", "9"},
		{"1", "5", "9"}, {"3", "5", "7"},
	}, got)
}

func TestScanWin(t *testing.T) {
	tests := []struct {
		name      string
		marks     map[int]PlayerMark
		want      PlayerMark
		wantFound bool
	}{
		{name: "Empty board", marks: nil, want: None, wantFound: false},
		{
			name:  "X wins - first row",
			marks: map[int]PlayerMark{1: PlayerX, 2: PlayerX, 3: PlayerX},
			want:  PlayerX, wantFound: true,
		},
		{
			name:  "O wins - second column",
			marks: map[int]PlayerMark{2: PlayerO, 5: PlayerO, 8: PlayerO, 1: PlayerX, 4: PlayerX},
			want:  PlayerO, wantFound: true,
		},
		{
			name:  "X wins - main diagonal",
			marks: map[int]PlayerMark{1: PlayerX, 5: PlayerX, 9: PlayerX},
			want:  PlayerX, wantFound: true,
		},
		{
			name:  "O wins - anti-diagonal",
			marks: map[int]PlayerMark{3: PlayerO, 5: PlayerO, 7: PlayerO},
			want:  PlayerO, wantFound: true,
		},
		{
			name: "Full board without a line",
			marks: map[int]PlayerMark{
				1: PlayerX, 2: PlayerO, 3: PlayerX,
				4: PlayerX, 5: PlayerO, 6: PlayerO,
				7: PlayerO, 8: PlayerX, 9: PlayerX,
			},
			want: None, wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardWith(t, 3, tt.marks)
			got, found := ScanWin(b)
			if got != tt.want || found != tt.wantFound {
				t.Errorf("ScanWin() got = (%v, %v), want (%v, %v)", got, found, tt.want, tt.wantFound)
			}
		})
	}

	t.Run("Five by five column", func(t *testing.T) {
		b := boardWith(t, 5, map[int]PlayerMark{3: PlayerO, 8: PlayerO, 13: PlayerO, 18: PlayerO, 23: PlayerO})
		got, found := ScanWin(b)
		assert.True(t, found)
		assert.Equal(t, PlayerO, got)
	})
}

func TestScanThreat(t *testing.T) {
	tests := []struct {
		name      string
		marks     map[int]PlayerMark
		want      int
		wantFound bool
	}{
		{name: "Empty board", marks: nil, want: 0, wantFound: false},
		{
			name:  "X on 1 and 2",
			marks: map[int]PlayerMark{1: PlayerX, 2: PlayerX},
			want:  3, wantFound: true,
		},
		{
			name:  "O on 2 and 8 threatens the middle column",
			marks: map[int]PlayerMark{2: PlayerO, 8: PlayerO},
			want:  5, wantFound: true,
		},
		{
			name:  "Anti-diagonal is checked last",
			marks: map[int]PlayerMark{3: PlayerX, 7: PlayerX},
			want:  5, wantFound: true,
		},
		{
			// Row 0 is visited before column 0.
			name:  "Row wins the tie against the column",
			marks: map[int]PlayerMark{1: PlayerO, 2: PlayerO, 4: PlayerO},
			want:  3, wantFound: true,
		},
		{
			// Column 0 comes before column 1, so 7 is chosen even though
			// O could complete the middle column on 8.
			name:  "Scan order decides between block and win",
			marks: map[int]PlayerMark{1: PlayerX, 4: PlayerX, 5: PlayerO, 9: PlayerO, 2: PlayerO, 3: PlayerX},
			want:  7, wantFound: true,
		},
		{
			name:  "Blocked lines are ignored",
			marks: map[int]PlayerMark{1: PlayerX, 2: PlayerO, 5: PlayerX, 9: PlayerO},
			want:  0, wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardWith(t, 3, tt.marks)
			got, found := ScanThreat(b)
			if got != tt.want || found != tt.wantFound {
				t.Errorf("ScanThreat() got = (%d, %v), want (%d, %v)", got, found, tt.want, tt.wantFound)
			}
		})
	}
}
