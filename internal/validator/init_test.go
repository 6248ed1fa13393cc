package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Size int `validate:"boardsize"`
	Mode int `validate:"gamemode"`
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name    string
		in      sample
		wantErr bool
	}{
		{name: "Classic board", in: sample{Size: 3, Mode: 1}},
		{name: "Largest board", in: sample{Size: MaxBoardSize, Mode: 2}},
		{name: "Even size", in: sample{Size: 4, Mode: 1}, wantErr: true},
		{name: "Too small", in: sample{Size: 1, Mode: 1}, wantErr: true},
		{name: "Too large", in: sample{Size: MaxBoardSize + 2, Mode: 1}, wantErr: true},
		{name: "Unknown mode", in: sample{Size: 3, Mode: 3}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := GetValidator().Struct(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
