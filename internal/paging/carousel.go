package paging

// Wrap maps i into [0, n) circularly. It returns 0 when n <= 0.
func Wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Carousel is a circular index over Len images.
type Carousel struct {
	Index int
	Len   int
}

func NewCarousel(index, n int) Carousel {
	return Carousel{Index: Wrap(index, n), Len: n}
}

func (c Carousel) Prev() int { return Wrap(c.Index-1, c.Len) }

func (c Carousel) Next() int { return Wrap(c.Index+1, c.Len) }

// Position is the one-based index for "n / total" counters.
func (c Carousel) Position() int {
	if c.Len == 0 {
		return 0
	}
	return c.Index + 1
}

// Multiple reports whether navigation controls make sense.
func (c Carousel) Multiple() bool { return c.Len > 1 }
