package snake

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Vector returns the unit step for the direction.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

const initialLength = 3

// Snake is the player's body. The head is body[0].
// It knows nothing about food or shields; the engine decides what a
// collision means.
type Snake struct {
	grid      Grid
	body      []Point
	direction Direction // committed on the last move
	nextDir   Direction // buffered for the next move
	growing   bool
}

// NewSnake creates a snake of length 3 centred on the grid, heading right.
func NewSnake(grid Grid) *Snake {
	s := &Snake{grid: grid}
	s.Reset()
	return s
}

// NewSnakeWithBody creates a snake from an explicit body, head first.
func NewSnakeWithBody(grid Grid, body []Point, dir Direction) *Snake {
	s := &Snake{
		grid:      grid,
		body:      append([]Point(nil), body...),
		direction: dir,
		nextDir:   dir,
	}
	return s
}

// Reset puts the snake back to its starting position.
func (s *Snake) Reset() {
	c := s.grid.Center()
	s.body = s.body[:0]
	for i := 0; i < initialLength; i++ {
		s.body = append(s.body, Point{X: c.X - i, Y: c.Y})
	}
	s.direction = DirRight
	s.nextDir = DirRight
	s.growing = false
}

// SetDirection buffers d for the next move.
// Reversing straight into the neck is rejected and reported as false.
func (s *Snake) SetDirection(d Direction) bool {
	if d == s.direction.Opposite() {
		return false
	}
	s.nextDir = d
	return true
}

// Move commits the buffered direction and advances one cell.
// Bounds are not checked here.
func (s *Snake) Move() {
	s.direction = s.nextDir
	newHead := s.Head().Add(s.direction)

	s.body = append(s.body, Point{})
	copy(s.body[1:], s.body)
	s.body[0] = newHead

	if s.growing {
		s.growing = false
		return
	}
	s.body = s.body[:len(s.body)-1]
}

// Eat makes the next move keep the tail.
func (s *Snake) Eat() {
	s.growing = true
}

// CheckWallCollision reports whether the head left the board.
func (s *Snake) CheckWallCollision() bool {
	return !s.grid.Contains(s.Head())
}

// CheckSelfCollision reports whether the head overlaps the rest of the body.
func (s *Snake) CheckSelfCollision() bool {
	head := s.Head()
	for _, p := range s.body[1:] {
		if p == head {
			return true
		}
	}
	return false
}

// CheckCollision reports a wall or self collision.
func (s *Snake) CheckCollision() bool {
	return s.CheckWallCollision() || s.CheckSelfCollision()
}

// Head returns the head cell.
func (s *Snake) Head() Point {
	return s.body[0]
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []Point {
	return append([]Point(nil), s.body...)
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the direction committed on the last move.
func (s *Snake) Direction() Direction {
	return s.direction
}

// Growing reports whether the next move will keep the tail.
func (s *Snake) Growing() bool {
	return s.growing
}
