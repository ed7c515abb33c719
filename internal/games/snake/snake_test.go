package snake

import (
	"math/rand"
	"testing"
)

func TestNewSnakeStartsCentered(t *testing.T) {
	s := NewSnake(NewGrid(20))

	expected := []Point{{10, 10}, {9, 10}, {8, 10}}
	body := s.Body()
	if len(body) != len(expected) {
		t.Fatalf("Expected length %d, got %d", len(expected), len(body))
	}
	for i := range expected {
		if body[i] != expected[i] {
			t.Errorf("body[%d] = %v, expected %v", i, body[i], expected[i])
		}
	}
	if s.Direction() != DirRight {
		t.Errorf("Expected initial direction right, got %v", s.Direction())
	}
}

func TestSnakeMove(t *testing.T) {
	s := NewSnake(NewGrid(20))
	s.Move()

	if s.Head() != (Point{11, 10}) {
		t.Errorf("Expected head at (11,10), got %v", s.Head())
	}
	if s.Len() != 3 {
		t.Errorf("Move without eating should keep length 3, got %d", s.Len())
	}
	if s.Body()[2] != (Point{9, 10}) {
		t.Errorf("Tail should follow, got %v", s.Body()[2])
	}
}

func TestSnakeRejectsReversal(t *testing.T) {
	s := NewSnake(NewGrid(20))

	if s.SetDirection(DirLeft) {
		t.Error("Reversing into the neck should be rejected")
	}
	s.Move()
	if s.Head() != (Point{11, 10}) {
		t.Errorf("Snake should keep moving right, head at %v", s.Head())
	}

	if !s.SetDirection(DirUp) {
		t.Error("Turning up should be accepted")
	}
	// Still compared against the committed direction (right), so down is allowed to replace up.
	if !s.SetDirection(DirDown) {
		t.Error("Down should replace the buffered up")
	}
	s.Move()
	if s.Head() != (Point{11, 11}) {
		t.Errorf("Expected head at (11,11), got %v", s.Head())
	}
}

func TestSnakeNeverReverses(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}

	for run := 0; run < 50; run++ {
		s := NewSnake(NewGrid(40))
		prev := s.Direction()
		for step := 0; step < 200; step++ {
			for n := rng.Intn(4); n >= 0; n-- {
				s.SetDirection(dirs[rng.Intn(len(dirs))])
			}
			s.Move()
			if s.Direction() == prev.Opposite() {
				t.Fatalf("run %d step %d: reversed from %v to %v", run, step, prev, s.Direction())
			}
			prev = s.Direction()
		}
	}
}

func TestSnakeGrowth(t *testing.T) {
	s := NewSnake(NewGrid(20))

	s.Eat()
	s.Move()
	if s.Len() != 4 {
		t.Fatalf("Eat then move should grow to 4, got %d", s.Len())
	}
	if s.Growing() {
		t.Error("Growth flag should be consumed by the move")
	}

	for i := 0; i < 3; i++ {
		s.Move()
		if s.Len() != 4 {
			t.Errorf("Move %d without eating changed length to %d", i, s.Len())
		}
	}
}

func TestSnakeCollision(t *testing.T) {
	grid := NewGrid(10)

	tests := []struct {
		name      string
		body      []Point
		wall      bool
		self      bool
		collision bool
	}{
		{"inside", []Point{{5, 5}, {4, 5}, {3, 5}}, false, false, false},
		{"left wall", []Point{{-1, 5}, {0, 5}, {1, 5}}, true, false, true},
		{"right wall", []Point{{10, 5}, {9, 5}, {8, 5}}, true, false, true},
		{"top wall", []Point{{5, -1}, {5, 0}, {5, 1}}, true, false, true},
		{"bottom wall", []Point{{5, 10}, {5, 9}, {5, 8}}, true, false, true},
		{"corner cell", []Point{{9, 9}, {8, 9}, {7, 9}}, false, false, false},
		{"self", []Point{{5, 5}, {6, 5}, {6, 6}, {5, 6}, {5, 5}}, false, true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSnakeWithBody(grid, tc.body, DirRight)
			if got := s.CheckWallCollision(); got != tc.wall {
				t.Errorf("CheckWallCollision() = %v, expected %v", got, tc.wall)
			}
			if got := s.CheckSelfCollision(); got != tc.self {
				t.Errorf("CheckSelfCollision() = %v, expected %v", got, tc.self)
			}
			if got := s.CheckCollision(); got != tc.collision {
				t.Errorf("CheckCollision() = %v, expected %v", got, tc.collision)
			}
		})
	}
}

func TestSnakeSelfCollisionByMoving(t *testing.T) {
	// A length-5 snake turning into itself: right, down, left, up.
	s := NewSnakeWithBody(NewGrid(10), []Point{{5, 5}, {4, 5}, {3, 5}, {2, 5}, {1, 5}}, DirRight)

	s.SetDirection(DirDown)
	s.Move()
	s.SetDirection(DirLeft)
	s.Move()
	s.SetDirection(DirUp)
	s.Move()

	if !s.CheckSelfCollision() {
		t.Errorf("Expected self collision, head %v body %v", s.Head(), s.Body())
	}
}

func TestSnakeReset(t *testing.T) {
	s := NewSnake(NewGrid(20))
	s.SetDirection(DirUp)
	s.Eat()
	s.Move()
	s.Reset()

	if s.Len() != 3 || s.Head() != (Point{10, 10}) || s.Direction() != DirRight || s.Growing() {
		t.Errorf("Reset did not restore the start state: %v %v", s.Body(), s.Direction())
	}
}

func TestDirectionHelpers(t *testing.T) {
	tests := []struct {
		d        Direction
		dx, dy   int
		opposite Direction
	}{
		{DirUp, 0, -1, DirDown},
		{DirDown, 0, 1, DirUp},
		{DirLeft, -1, 0, DirRight},
		{DirRight, 1, 0, DirLeft},
	}

	for _, tc := range tests {
		dx, dy := tc.d.Vector()
		if dx != tc.dx || dy != tc.dy {
			t.Errorf("%v.Vector() = (%d,%d), expected (%d,%d)", tc.d, dx, dy, tc.dx, tc.dy)
		}
		if tc.d.Opposite() != tc.opposite {
			t.Errorf("%v.Opposite() = %v, expected %v", tc.d, tc.d.Opposite(), tc.opposite)
		}
	}
}

func TestGridContains(t *testing.T) {
	g := NewGrid(20)

	tests := []struct {
		p        Point
		expected bool
	}{
		{Point{0, 0}, true},
		{Point{19, 19}, true},
		{Point{20, 0}, false},
		{Point{0, 20}, false},
		{Point{-1, 5}, false},
	}
	for _, tc := range tests {
		if got := g.Contains(tc.p); got != tc.expected {
			t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
		}
	}

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		if p := g.RandomCell(rng); !g.Contains(p) {
			t.Fatalf("RandomCell returned %v outside the grid", p)
		}
	}
	if g.CellCount() != 400 {
		t.Errorf("CellCount() = %d, expected 400", g.CellCount())
	}
}
