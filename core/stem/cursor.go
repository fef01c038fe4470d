package stem

// cursor walks a structure left to right and can step back by one,
// so a character that ends a closing run is scanned again by the outer loop.
type cursor struct {
	s        string
	i        int
	advances int
}

func (c *cursor) done() bool { return c.i >= len(c.s) }

func (c *cursor) peek() byte { return c.s[c.i] }

func (c *cursor) pos() int { return c.i }

func (c *cursor) advance() {
	c.i++
	c.advances++
}

func (c *cursor) rewind() { c.i-- }
