package model

import (
	"reflect"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestCellAt(t *testing.T) {
	g := Grid{
		{Live, Dead, Live},
		{Live},
		{},
	}

	tests := []struct {
		name string
		x, y int
		want Cell
	}{
		{name: "inside", x: 0, y: 0, want: Live},
		{name: "inside dead", x: 1, y: 0, want: Dead},
		{name: "negative column", x: -1, y: 0, want: Dead},
		{name: "negative row", x: 0, y: -1, want: Dead},
		{name: "past short row", x: 2, y: 1, want: Dead},
		{name: "empty row", x: 0, y: 2, want: Dead},
		{name: "past last row", x: 0, y: 3, want: Dead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.CellAt(tt.x, tt.y); got != tt.want {
				t.Fatalf("CellAt(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestCellAtNilGrid(t *testing.T) {
	if got := CellAt(nil, 0, 0); got != Dead {
		t.Fatalf("expected Dead, got %v", got)
	}
}

func TestLiveNeighbourCount(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	})

	if got := g.LiveNeighbourCount(1, 1); got != 8 {
		t.Fatalf("centre: expected 8, got %d", got)
	}
	if got := g.LiveNeighbourCount(0, 0); got != 3 {
		t.Fatalf("corner: expected 3, got %d", got)
	}
	if got := g.LiveNeighbourCount(1, 0); got != 5 {
		t.Fatalf("edge: expected 5, got %d", got)
	}
	if got := g.LiveNeighbourCount(4, 4); got != 0 {
		t.Fatalf("far outside: expected 0, got %d", got)
	}
}

func TestFromInts(t *testing.T) {
	g, err := FromInts([][]int{{0, 1}, {1}})
	if err != nil {
		t.Fatalf("FromInts: %v", err)
	}
	want := Grid{{Dead, Live}, {Live}}
	if !reflect.DeepEqual(g, want) {
		t.Fatalf("got %v, want %v", g, want)
	}
}

func TestFromIntsRejectsInvalidCell(t *testing.T) {
	_, err := FromInts([][]int{{0, 1}, {1, 2}})
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Cause(err) != ErrInvalidCell {
		t.Fatalf("expected ErrInvalidCell, got %v", err)
	}
	if !strings.Contains(err.Error(), "row 1 column 1") {
		t.Fatalf("expected coordinate in error, got %v", err)
	}
}

func TestFromIntsLenient(t *testing.T) {
	g := FromIntsLenient([][]int{{0, 1, 2}, {-1}})
	want := [][]int{{0, 1, 0}, {0}}
	if got := g.Ints(); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseCell(t *testing.T) {
	if c, err := ParseCell(1); err != nil || c != Live {
		t.Fatalf("ParseCell(1) = %v, %v", c, err)
	}
	if c, err := ParseCell(0); err != nil || c != Dead {
		t.Fatalf("ParseCell(0) = %v, %v", c, err)
	}
	if _, err := ParseCell(-1); errors.Cause(err) != ErrInvalidCell {
		t.Fatalf("ParseCell(-1): expected ErrInvalidCell, got %v", err)
	}
}

func TestCellString(t *testing.T) {
	if Live.String() != "1" || Dead.String() != "0" {
		t.Fatalf("unexpected strings %q %q", Live.String(), Dead.String())
	}
	if Cell(5).IsLive() || Cell(5).Int() != 0 {
		t.Fatal("expected unknown value to behave as dead")
	}
}

func TestCloneIsDeep(t *testing.T) {
	g := Grid{{Live, Dead}, nil, {}}
	clone := g.Clone()

	if !reflect.DeepEqual(clone.Shape(), g.Shape()) {
		t.Fatalf("shape: got %v, want %v", clone.Shape(), g.Shape())
	}
	clone[0][1] = Live
	if g[0][1] != Dead {
		t.Fatal("clone shares storage with original")
	}
}

func TestEqual(t *testing.T) {
	a := Grid{{Live, Dead}, {Live}}

	if !a.Equal(Grid{{Live, Dead}, {Live}}) {
		t.Fatal("expected equal grids")
	}
	if a.Equal(Grid{{Live, Dead}, {Live, Dead}}) {
		t.Fatal("expected different row length to differ")
	}
	if a.Equal(Grid{{Live, Live}, {Live}}) {
		t.Fatal("expected different cells to differ")
	}
	if a.Equal(Grid{{Live, Dead}}) {
		t.Fatal("expected different row count to differ")
	}
}

func TestCountLivingCells(t *testing.T) {
	g := Grid{{Live, Dead, Live}, {}, {Live}}
	if got := g.CountLivingCells(); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if got := g.Height(); got != 3 {
		t.Fatalf("expected height 3, got %d", got)
	}
}
