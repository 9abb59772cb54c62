package recording

// DocumentOption configures a Document during creation.
//
// Example:
//
//	doc := recording.NewDocument(800, 600,
//	    recording.WithBackground("#ffffff"),
//	    recording.WithMinStrokeWidth(1))
type DocumentOption func(*documentOptions)

type documentOptions struct {
	minStrokeWidth float64
	background     string
}

func defaultDocumentOptions() documentOptions {
	return documentOptions{}
}

// WithMinStrokeWidth sets the smallest stroke width, in device units,
// that canvases of the document paint.
func WithMinStrokeWidth(w float64) DocumentOption {
	return func(o *documentOptions) {
		if w > 0 {
			o.minStrokeWidth = w
		}
	}
}

// WithBackground sets the page colour backends fill before playback.
func WithBackground(color string) DocumentOption {
	return func(o *documentOptions) {
		o.background = color
	}
}
