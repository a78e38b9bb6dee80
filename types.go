package md2tex

// Input contains conversion parameters.
type Input struct {
	Markdown      string // Markdown content (required)
	Supplementary bool   // supplementary-material conventions
}

// Result is the outcome of one conversion.
type Result struct {
	LaTeX    string    // body-only LaTeX fragment
	Warnings []Warning // recoverable and advisory issues, in document order
}

// Warning describes a recoverable or advisory issue found during conversion.
type Warning struct {
	Line     int // 1-based line, 0 if unknown
	Category string
	Severity string
	Message  string
	Fix      string
}

// String formats the warning for human display.
func (w Warning) String() string {
	s := "[" + w.Category + "] " + w.Message
	if w.Fix != "" {
		s += " (hint: " + w.Fix + ")"
	}
	return s
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	figureDir string
}

// defaultFigureDir is where the LaTeX build expects generated figures.
const defaultFigureDir = "Figures"

// WithFigureDir sets the directory figure paths resolve into. The FIGURES/
// prefix in manuscript image paths is rewritten to it.
// Panics if dir is empty (programmer error).
func WithFigureDir(dir string) Option {
	if dir == "" {
		panic("md2tex: WithFigureDir directory must not be empty")
	}
	return func(c *Converter) {
		c.cfg.figureDir = dir
	}
}
