package units

// Point is a location in EMU.
type Point struct {
	X, Y Length
}

// Rect is an axis-aligned rectangle, (X, Y) being its top-left corner.
type Rect struct {
	X, Y Length
	W, H Length
}

func (r Rect) Left() Length   { return r.X }
func (r Rect) Top() Length    { return r.Y }
func (r Rect) Right() Length  { return r.X + r.W }
func (r Rect) Bottom() Length { return r.Y + r.H }

func (r Rect) TopLeft() Point     { return Point{r.X, r.Y} }
func (r Rect) TopRight() Point    { return Point{r.Right(), r.Y} }
func (r Rect) BottomRight() Point { return Point{r.Right(), r.Bottom()} }
func (r Rect) BottomLeft() Point  { return Point{r.X, r.Bottom()} }
func (r Rect) Center() Point      { return Point{r.X + r.W/2, r.Y + r.H/2} }

// Contains reports whether p is inside r, right and bottom edges excluded.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}
