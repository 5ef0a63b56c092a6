package peejay

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoordString(t *testing.T) {
	require.Equal(t, "1:1", NewCoord().String())
	require.Equal(t, "3:7", Coord{Line: 3, Column: 7}.String())
}

func TestCoordBefore(t *testing.T) {
	for _, test := range []struct {
		name     string
		a, b     Coord
		expected bool
	}{
		{"same line, earlier column", Coord{1, 2}, Coord{1, 5}, true},
		{"same line, later column", Coord{1, 5}, Coord{1, 2}, false},
		{"earlier line wins regardless of column", Coord{1, 100}, Coord{2, 1}, true},
		{"equal", Coord{2, 3}, Coord{2, 3}, false},
	} {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, test.a.Before(test.b))
		})
	}
}

func TestCoordAdvance(t *testing.T) {
	c := NewCoord()
	c = c.nextColumn()
	require.Equal(t, Coord{Line: 1, Column: 2}, c)

	c = c.nextLine()
	require.Equal(t, Coord{Line: 2, Column: 1}, c)
	require.True(t, c.Equal(Coord{Line: 2, Column: 1}))
}
