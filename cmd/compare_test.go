package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColumnList(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr bool
	}{
		{"Single", "0", []int{0}, false},
		{"Pair", "0,1", []int{0, 1}, false},
		{"Spaces", " 2 , 5 ", []int{2, 5}, false},
		{"Empty", "", nil, true},
		{"Negative", "0,-1", nil, true},
		{"NotANumber", "0,x", nil, true},
		{"TrailingComma", "0,", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseColumnList(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildColumns(t *testing.T) {
	cols, err := buildColumns("0,1", 4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, cols.Instance)
	assert.Equal(t, 4, cols.Value)

	_, err = buildColumns("0", -1)
	assert.Error(t, err)
}
