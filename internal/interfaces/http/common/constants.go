package common

const (
	// MaxRequestBody limits JSON request bodies on text-only endpoints.
	MaxRequestBody = 1 << 20
	// MaxImageRequestBody limits bodies that may carry an inline data-URL
	// image alongside the text fields.
	MaxImageRequestBody = 12 << 20
)
