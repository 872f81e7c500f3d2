package seo

// Metadata is the generated title/description pair.
type Metadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Request is the body of POST /api/generate-seo.
type Request struct {
	Content string `json:"content"`
}

// Response always carries both fields; Error is set on failure.
type Response struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Error       string `json:"error,omitempty"`
}
