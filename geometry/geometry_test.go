package geometry

import (
	"testing"

	"github.com/matryer/is"
)

func TestTranslate(t *testing.T) {
	is := is.New(t)
	p := Position{Row: 7, Col: 7}
	is.Equal(p.Translate(Across, 3), Position{7, 10})
	is.Equal(p.Translate(Down, -8), Position{-1, 7})
	is.Equal(p.Translate(NoDirection, 4), p)
	is.Equal(p.Next(Down), Position{8, 7})
}

func TestOther(t *testing.T) {
	is := is.New(t)
	is.Equal(Across.Other(), Down)
	is.Equal(Down.Other(), Across)
	is.Equal(NoDirection.Other(), NoDirection)
	is.Equal(Position{3, 9}.Coord(Across), 9)
	is.Equal(Position{3, 9}.Coord(Down), 3)
}
