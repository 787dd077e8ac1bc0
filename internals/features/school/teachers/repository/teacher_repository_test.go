package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDArray(t *testing.T) {
	a := uuid.MustParse("6f1c2d3e-0000-4000-8000-000000000001")
	b := uuid.MustParse("6f1c2d3e-0000-4000-8000-000000000002")

	tests := []struct {
		name string
		in   []uuid.UUID
		want string
	}{
		{"nil", nil, "{}"},
		{"empty", []uuid.UUID{}, "{}"},
		{"two ids", []uuid.UUID{a, b}, `{"` + a.String() + `","` + b.String() + `"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := uuidArray(tt.in).Value()
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestIntArray(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want string
	}{
		{"nil", nil, "{}"},
		{"course ids", []int{12, 7, 301}, "{12,7,301}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := intArray(tt.in).Value()
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}
