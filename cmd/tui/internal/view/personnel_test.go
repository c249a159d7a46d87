package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCents(t *testing.T) {
	type testCase struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}

	tests := []testCase{
		{name: "dot", input: "12.5", want: 1250},
		{name: "comma", input: "12,50", want: 1250},
		{name: "whole", input: " 30 ", want: 3000},
		{name: "rounds", input: "0.005", want: 1},
		{name: "negative", input: "-1", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCents(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
