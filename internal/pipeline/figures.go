package pipeline

import (
	"path"
	"regexp"
	"strings"
)

// The three figure input shapes, tried in a fixed order; first match wins.
var (
	// ![](path) on one line, {attributes} Caption on the next non-blank
	// line. The caption runs to the end of its paragraph.
	newFigurePattern = regexp.MustCompile(`(?m)^!\[\]\(([^)]+)\)[ \t]*\n(?:[ \t]*\n)*\{([^}]*)\}[ \t]*(.*(?:\n.+)*)`)

	// ![caption](path){attributes}
	attributedFigurePattern = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)\{([^}]*)\}`)

	// ![caption](path)
	simpleFigurePattern = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
)

// generatedFigureExts are figure-script sources whose output lives at
// <dir>/<base>/<base>.png by the generation naming convention.
var generatedFigureExts = map[string]bool{
	".mmd": true,
	".py":  true,
}

// convertFigures rewrites every Markdown figure occurrence into a complete
// LaTeX figure environment. Code spans were protected before this stage, so
// an image syntax inside a fence is never matched.
func convertFigures(text string, ctx *Context) string {
	text = newFigurePattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := newFigurePattern.FindStringSubmatch(match)
		attrs := parseAttributes(groups[2])
		caption := strings.TrimSpace(strings.ReplaceAll(groups[3], "\n", " "))
		return figureEnvironment(groups[1], caption, attrs, ctx)
	})
	text = attributedFigurePattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := attributedFigurePattern.FindStringSubmatch(match)
		attrs := parseAttributes(groups[3])
		return figureEnvironment(groups[2], groups[1], attrs, ctx)
	})
	text = simpleFigurePattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := simpleFigurePattern.FindStringSubmatch(match)
		return figureEnvironment(groups[2], groups[1], AttributeBlock{}, ctx)
	})
	return text
}

// figureEnvironment renders one figure occurrence. A figure without an
// explicit label is still emitted, it just cannot be cross-referenced.
func figureEnvironment(src, caption string, attrs AttributeBlock, ctx *Context) string {
	figPath := resolveFigurePath(src, ctx)
	position := attrs.Get("tex_position", "ht")
	width := figureWidth(attrs.Get("width", ""))
	rotate := attrs.Get("rotate", "")

	label := ""
	if namespace, key, ok := attrs.Label(); ok {
		if namespace != NamespaceFigure && namespace != NamespaceSuppFigure {
			ctx.Warnings.Addf(CategoryFigure,
				"figure label %q uses namespace %q, expected fig: or sfig:", attrs.ID, namespace)
		}
		label = ctx.Labels.Declare(namespace, key)
	}

	if caption == "" {
		ctx.Warnings.Advise(CategoryStyle, "figure %s has no caption", figPath)
	}
	caption = convertBoldItalic(caption)

	graphics := `\includegraphics[width=` + width + `]{` + figPath + `}`
	if rotate != "" {
		graphics = `\rotatebox{` + rotate + `}{` + graphics + `}`
	}

	var b strings.Builder
	b.WriteString(`\begin{figure}[` + position + "]\n")
	b.WriteString("\\centering\n")
	b.WriteString(graphics + "\n")
	b.WriteString(`\caption{` + caption + "}\n")
	if label != "" {
		b.WriteString(`\label{` + label + "}\n")
	}
	b.WriteString(`\end{figure}`)
	if ctx.Supplementary {
		b.WriteString("\n\\newpage")
	}
	return b.String()
}

// resolveFigurePath maps a manuscript figure reference to the path the LaTeX
// compiler will load. The FIGURES/ source prefix becomes the build's figure
// output directory; script sources resolve through the generation naming
// convention; SVG is rewritten to PNG because the LaTeX toolchain cannot
// ingest vector SVG directly.
func resolveFigurePath(src string, ctx *Context) string {
	p := src
	if rest, ok := strings.CutPrefix(p, "FIGURES/"); ok {
		p = ctx.FigureDir + "/" + rest
	}

	ext := strings.ToLower(path.Ext(p))
	switch {
	case generatedFigureExts[ext]:
		base := strings.TrimSuffix(path.Base(p), path.Ext(p))
		p = path.Join(path.Dir(p), base, base+".png")
	case ext == ".svg":
		p = strings.TrimSuffix(p, path.Ext(p)) + ".png"
	}
	return p
}

// figureWidth normalizes a width attribute. A bare fraction or percentage is
// taken relative to \linewidth; values starting with a backslash pass
// through as explicit LaTeX lengths.
func figureWidth(width string) string {
	switch {
	case width == "":
		return `\linewidth`
	case strings.HasPrefix(width, `\`):
		return width
	case strings.HasSuffix(width, "%"):
		if frac, ok := percentToFraction(strings.TrimSuffix(width, "%")); ok {
			return frac + `\linewidth`
		}
		return `\linewidth`
	default:
		return width + `\linewidth`
	}
}

// percentToFraction converts "85" to "0.85" without floating-point noise.
func percentToFraction(s string) (string, bool) {
	digits := strings.TrimSpace(s)
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	switch {
	case digits == "":
		return "", false
	case digits == "100":
		return "1.0", true
	case len(digits) == 3:
		return digits[:1] + "." + digits[1:], true
	case len(digits) == 2:
		return "0." + strings.TrimRight(digits, "0") + zeroIfEmpty(digits), true
	default:
		return "0.0" + digits, true
	}
}

func zeroIfEmpty(digits string) string {
	if strings.TrimRight(digits, "0") == "" {
		return "0"
	}
	return ""
}
