package mapper

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testInput struct {
	Value int
}

type testOutput struct {
	Result string
}

func TestMapSlice(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  []string
	}{
		{name: "nil input returns empty slice", input: nil, want: []string{}},
		{name: "empty slice returns empty slice", input: []int{}, want: []string{}},
		{name: "maps every element in order", input: []int{1, 2, 3}, want: []string{"num_1", "num_2", "num_3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapSlice(tt.input, func(i int) string { return fmt.Sprintf("num_%d", i) })
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapSlicePtr(t *testing.T) {
	toOutput := func(in *testInput) *testOutput {
		return &testOutput{Result: fmt.Sprintf("v%d", in.Value)}
	}

	got := MapSlicePtr([]*testInput{{Value: 1}, nil, {Value: 3}}, toOutput)
	assert.Equal(t, []*testOutput{{Result: "v1"}, {Result: "v3"}}, got)

	assert.Empty(t, MapSlicePtr(nil, toOutput))
	assert.NotNil(t, MapSlicePtr(nil, toOutput))
}
