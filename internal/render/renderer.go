package render

// Renderer turns markup source into HTML. Implementations must be
// deterministic with no side effects visible to the caller: the same
// input always produces the same output.
type Renderer interface {
	Render(src []byte) ([]byte, error)
}
