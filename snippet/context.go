package snippet

// contextBuffer is the bounded FIFO of pre-context tokens: up to limit
// entries, with the ability to append trailing nonword characters onto the
// most recently pushed entry (attaching punctuation/whitespace to the
// context token it followed).
type contextBuffer struct {
	limit  int
	tokens []string
}

func newContextBuffer(limit int) *contextBuffer {
	return &contextBuffer{limit: limit}
}

// Len reports the number of buffered tokens.
func (c *contextBuffer) Len() int {
	return len(c.tokens)
}

// Empty reports whether the buffer holds no tokens.
func (c *contextBuffer) Empty() bool {
	return len(c.tokens) == 0
}

// Push appends tok, dropping the oldest entry if the buffer is already at
// its limit. Pushing into a zero-limit buffer is a no-op.
func (c *contextBuffer) Push(tok string) {
	if c.limit <= 0 {
		return
	}
	if len(c.tokens) >= c.limit {
		c.tokens = append(c.tokens[:0], c.tokens[1:]...)
	}
	c.tokens = append(c.tokens, tok)
}

// AppendToLast appends s onto the most recently pushed token, if any.
func (c *contextBuffer) AppendToLast(s string) {
	if len(c.tokens) == 0 {
		return
	}
	c.tokens[len(c.tokens)-1] += s
}

// Drain returns the buffered tokens in FIFO order and empties the buffer.
func (c *contextBuffer) Drain() []string {
	if len(c.tokens) == 0 {
		return nil
	}
	out := c.tokens
	c.tokens = nil
	return out
}

// Reset empties the buffer without changing its limit.
func (c *contextBuffer) Reset() {
	c.tokens = nil
}

// SetLimit changes the buffer's capacity, dropping the oldest entries if
// the buffer currently holds more than the new limit.
func (c *contextBuffer) SetLimit(limit int) {
	if limit < 0 {
		limit = 0
	}
	c.limit = limit
	if len(c.tokens) > limit {
		c.tokens = append([]string(nil), c.tokens[len(c.tokens)-limit:]...)
	}
}
