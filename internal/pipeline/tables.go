package pipeline

import (
	"regexp"
	"strings"
)

var (
	tableCaptionBefore = regexp.MustCompile(`(?i)^Table(\*?)\s+\d+[:.]\s*(.*)$`)

	// Caption after the table, either order:
	//   {#table:id rotate=90} **Table 1: Caption**
	//   **Table 1: Caption** {#table:id}
	captionAttrFirst = regexp.MustCompile(`^\{([^}]*)\}\s*\*\*(.+)\*\*\s*$`)
	captionBoldFirst = regexp.MustCompile(`^\*\*(.+)\*\*\s*\{([^}]*)\}\s*$`)

	// "Table 1:" prefix inside a caption, dropped because the table
	// environment numbers itself.
	captionNumberPrefix = regexp.MustCompile(`(?i)^Table(\*?)\s+\d+[:.]\s*`)

	separatorCellPattern = regexp.MustCompile(`^(:?)-+(:?)$`)

	placeholderIndexPattern = regexp.MustCompile("\uE000(\\d+)\uE001")
)

// convertTables parses GitHub-style pipe tables and emits LaTeX table
// environments. Each emitted environment is immediately protected so the
// later converters cannot rewrite cell content; captions are fully converted
// here for the same reason.
func convertTables(text string, ctx *Context) string {
	lines := strings.Split(text, "\n")
	var out []string
	i := 0
	for i < len(lines) {
		if !isTableStart(lines, i) {
			out = append(out, lines[i])
			i++
			continue
		}

		headers := splitRow(lines[i])
		aligns, ok := parseSeparator(lines[i+1], len(headers))
		if !ok {
			ctx.Warnings.AddfAt(i+2, CategoryTable,
				"table separator row has %d columns, header has %d", len(splitRow(lines[i+1])), len(headers))
		}
		i += 2

		var rows [][]string
		for i < len(lines) && isTableRow(lines[i]) {
			rows = append(rows, padRow(splitRow(lines[i]), len(headers)))
			i++
		}

		// Caption before the table: "Table N: ..." on the previous line.
		caption, double := "", false
		if n := len(out); n > 0 {
			if m := tableCaptionBefore.FindStringSubmatch(strings.TrimSpace(out[n-1])); m != nil {
				double = m[1] == "*"
				caption = m[2]
				out = out[:n-1]
			}
		}

		// Caption after the table: blank line, then an attributed bold line.
		var attrs AttributeBlock
		if after, attrBlock, found := captionAfter(lines, i); found {
			caption = after
			attrs = attrBlock
			if m := captionNumberPrefix.FindStringSubmatch(after); m != nil {
				double = double || m[1] == "*"
				caption = captionNumberPrefix.ReplaceAllString(after, "")
			}
			i += 2
		}

		env := tableEnvironment(headers, rows, aligns, caption, attrs, double, ctx)
		out = append(out, ctx.Store.Add(env, SpanTable))
		if ctx.Supplementary {
			out = append(out, `\newpage`)
		}
	}
	return strings.Join(out, "\n")
}

func isTableStart(lines []string, i int) bool {
	if i+1 >= len(lines) || !isTableRow(lines[i]) {
		return false
	}
	next := strings.TrimSpace(lines[i+1])
	return isTableRow(lines[i+1]) && strings.Contains(next, "-")
}

func isTableRow(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "|") && strings.HasSuffix(trimmed, "|") && len(trimmed) > 1
}

func splitRow(line string) []string {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimPrefix(trimmed, "|")
	trimmed = strings.TrimSuffix(trimmed, "|")
	cells := strings.Split(trimmed, "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}

func padRow(cells []string, n int) []string {
	for len(cells) < n {
		cells = append(cells, "")
	}
	return cells[:n]
}

// parseSeparator maps alignment markers (:---, :---:, ---:) to l/c/r column
// specifiers, defaulting to l.
func parseSeparator(line string, n int) ([]string, bool) {
	cells := splitRow(line)
	aligns := make([]string, n)
	for i := range aligns {
		aligns[i] = "l"
	}
	for i, cell := range cells {
		if i >= n {
			return aligns, false
		}
		m := separatorCellPattern.FindStringSubmatch(cell)
		if m == nil {
			continue
		}
		switch {
		case m[1] == ":" && m[2] == ":":
			aligns[i] = "c"
		case m[2] == ":":
			aligns[i] = "r"
		}
	}
	return aligns, len(cells) == n
}

// captionAfter matches a blank line followed by an attributed caption line.
func captionAfter(lines []string, i int) (caption string, attrs AttributeBlock, found bool) {
	if i+1 >= len(lines) || strings.TrimSpace(lines[i]) != "" {
		return "", AttributeBlock{}, false
	}
	line := strings.TrimSpace(lines[i+1])
	if m := captionAttrFirst.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[2]), parseAttributes(m[1]), true
	}
	if m := captionBoldFirst.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), parseAttributes(m[2]), true
	}
	return "", AttributeBlock{}, false
}

// tableEnvironment renders one complete LaTeX table environment.
func tableEnvironment(headers []string, rows [][]string, aligns []string,
	caption string, attrs AttributeBlock, double bool, ctx *Context) string {

	rotate := attrs.Get("rotate", "")
	envName, position := tableEnvName(double, rotate != "", ctx.Supplementary)

	label := ""
	if namespace, key, ok := attrs.Label(); ok {
		if namespace != NamespaceTable && namespace != NamespaceSuppTable {
			ctx.Warnings.Addf(CategoryTable,
				"table label %q uses namespace %q, expected table: or stable:", attrs.ID, namespace)
		}
		label = ctx.Labels.Declare(namespace, key)
	}
	if caption == "" {
		ctx.Warnings.Advise(CategoryStyle, "table has no caption")
	}

	useRotatebox := rotate != "" && !strings.HasPrefix(envName, "sideways")

	var b strings.Builder
	b.WriteString(`\begin{` + envName + `}` + position + "\n")
	b.WriteString("\\centering\n")
	if useRotatebox {
		b.WriteString(`\rotatebox{` + rotate + "}{%\n")
	}
	b.WriteString(`\begin{tabular}{` + strings.Join(aligns, "") + "}\n")
	b.WriteString("\\hline\n")
	b.WriteString(tableRowLine(headers, ctx) + "\n\\hline\n")
	for _, row := range rows {
		b.WriteString(tableRowLine(row, ctx) + "\n")
	}
	b.WriteString("\\hline\n")
	b.WriteString("\\end{tabular}\n")
	if useRotatebox {
		b.WriteString("}%\n")
	}
	if caption != "" {
		b.WriteString(`\caption{` + convertTableCaption(caption, ctx) + "}\n")
	}
	if label != "" {
		b.WriteString(`\label{` + label + "}\n")
	}
	b.WriteString(`\end{` + envName + `}`)
	return b.String()
}

// tableEnvName selects the float environment: stable/sidewaystable variants
// for supplementary documents, starred forms for double-column tables.
func tableEnvName(double, rotated, supplementary bool) (string, string) {
	star := ""
	if double {
		star = "*"
	}
	switch {
	case rotated && supplementary:
		return "sidewaystable" + star, "[ht]"
	case supplementary:
		return "stable" + star, "[ht]"
	case double:
		return "table" + star, "[!ht]"
	default:
		return "table", "[ht]"
	}
}

func tableRowLine(cells []string, ctx *Context) string {
	formatted := make([]string, len(cells))
	for i, cell := range cells {
		formatted[i] = formatTableCell(cell, ctx)
	}
	return strings.Join(formatted, " & ") + ` \\`
}

// formatTableCell converts one cell: protected code spans become \texttt,
// bold and italic convert outside the \texttt blocks, and the remaining
// LaTeX-special characters are escaped. Content inside a code span is never
// escaped twice.
func formatTableCell(cell string, ctx *Context) string {
	cell = placeholderIndexPattern.ReplaceAllStringFunc(cell, func(token string) string {
		span, ok := ctx.Store.spanFor(token)
		if !ok || span.Category != SpanCode {
			return token
		}
		content := backtickSpanTrim.ReplaceAllString(span.Original, "")
		content = strings.Join(strings.Fields(content), " ")
		return `\texttt{` + EscapeLatex(content) + `}`
	})

	cell = mapOutsideTexttt(cell, convertBoldItalic)
	return escapeOutsideTexttt(cell)
}

// convertTableCaption fully converts a caption before the environment is
// protected: inline formatting, citations, and cross-references all apply
// inside captions.
func convertTableCaption(caption string, ctx *Context) string {
	caption = convertBoldItalic(caption)
	caption = convertCitations(caption, ctx)
	caption = convertCrossReferences(caption, ctx)
	return caption
}
