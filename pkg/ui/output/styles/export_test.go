package styles

// EmbeddedStyles exposes the embedded definitions to the external test package.
func EmbeddedStyles() []byte { return embeddedStyles }
