package dump

type Option func(*state)

func Indent(n int) Option {
	return func(st *state) { st.indent = n }
}

// MaxDepth limits how deep the rendering descends; deeper aggregates
// render as "...". Negative means unlimited.
func MaxDepth(n int) Option {
	return func(st *state) { st.maxDepth = n }
}

func WithColors(c *Colors) Option {
	return func(st *state) { st.color = c.Color }
}
