package pipeline

import (
	"strings"
	"testing"
)

func TestProtectRestoreRoundtrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
	}{
		{
			name: "plain prose untouched",
			text: "Nothing to protect here.",
		},
		{
			name: "inline code",
			text: "Use `go build` to compile.",
		},
		{
			name: "double backtick with embedded backtick",
			text: "The span ``a ` b`` survives.",
		},
		{
			name: "inline math",
			text: "Energy is $E = mc^2$ as usual.",
		},
		{
			name: "display math",
			text: "$$\\sum_{i=1}^{n} x_i$$",
		},
		{
			name: "equation environment",
			text: "\\begin{equation}\nx = 1\n\\end{equation}",
		},
		{
			name: "raw tex block",
			text: "{{tex:\\textcolor{red}{alert}}}",
		},
		{
			name: "html comment",
			text: "before <!-- hidden note --> after",
		},
		{
			name: "lstlisting environment",
			text: "\\begin{lstlisting}\n$dollar and *stars*\n\\end{lstlisting}",
		},
		{
			name: "mixed categories",
			text: "code `x` then $y$ then <!-- z --> done",
		},
		{
			name: "dollar inside code is code not math",
			text: "price is `$5` today",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			protected, store := Protect(tt.text)
			if got := store.Restore(protected); got != tt.text {
				t.Errorf("Restore(Protect(text)) = %q, want %q", got, tt.text)
			}
		})
	}
}

func TestProtectHidesSensitiveContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		text        string
		wantHidden  []string
		wantVisible []string
	}{
		{
			name:        "backtick content hidden",
			text:        "run `rm -rf *` carefully",
			wantHidden:  []string{"rm -rf *"},
			wantVisible: []string{"run ", " carefully"},
		},
		{
			name:        "math dollars hidden",
			text:        "value $a_b$ here",
			wantHidden:  []string{"$a_b$"},
			wantVisible: []string{"value ", " here"},
		},
		{
			name:        "comment hidden",
			text:        "x <!-- todo --> y",
			wantHidden:  []string{"<!--", "todo"},
			wantVisible: []string{"x ", " y"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			protected, _ := Protect(tt.text)
			for _, s := range tt.wantHidden {
				if strings.Contains(protected, s) {
					t.Errorf("protected text still contains %q: %q", s, protected)
				}
			}
			for _, s := range tt.wantVisible {
				if !strings.Contains(protected, s) {
					t.Errorf("protected text lost %q: %q", s, protected)
				}
			}
		})
	}
}

func TestProtectCategoryPriority(t *testing.T) {
	t.Parallel()

	// A dollar sign inside a code span must be protected as code, never
	// re-scanned as a math delimiter.
	_, store := Protect("pay `$5` now, not $x$ later")

	var categories []SpanCategory
	for _, span := range store.Spans() {
		categories = append(categories, span.Category)
	}
	if len(categories) != 2 {
		t.Fatalf("got %d spans, want 2: %v", len(categories), store.Spans())
	}
	if categories[0] != SpanCode {
		t.Errorf("first span category = %v, want code", categories[0])
	}
	if categories[1] != SpanMath {
		t.Errorf("second span category = %v, want math", categories[1])
	}
}

func TestRestoreReverseOrder(t *testing.T) {
	t.Parallel()

	// A span added later may contain the placeholder of an earlier span.
	// Reverse-order restoration re-exposes the inner placeholder first.
	store := &Store{}
	inner := store.Add("`inner`", SpanCode)
	outer := store.Add("wrapped "+inner+" content", SpanTable)

	got := store.Restore("before " + outer + " after")
	want := "before wrapped `inner` content after"
	if got != want {
		t.Errorf("Restore = %q, want %q", got, want)
	}
}

func TestRestoreUnknownPlaceholderLeftAsIs(t *testing.T) {
	t.Parallel()

	store := &Store{}
	store.Add("`x`", SpanCode)

	stray := spanStart + "99" + spanEnd
	got := store.Restore("text " + stray + " end")
	if !strings.Contains(got, stray) {
		t.Errorf("unknown placeholder was altered: %q", got)
	}
}

func TestStoreRender(t *testing.T) {
	t.Parallel()

	store := &Store{}
	code := store.Add("`x`", SpanCode)
	comment := store.Add("<!-- y -->", SpanComment)

	store.Render(SpanCode, func(s string) string { return "CODE" })

	got := store.Restore(code + " " + comment)
	want := "CODE <!-- y -->"
	if got != want {
		t.Errorf("Restore after Render = %q, want %q", got, want)
	}
}

func TestHasPlaceholder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "clean text", text: "nothing here", want: false},
		{name: "start marker", text: "a" + spanStart + "b", want: true},
		{name: "end marker", text: "a" + spanEnd + "b", want: true},
		{name: "full token", text: spanStart + "0" + spanEnd, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasPlaceholder(tt.text); got != tt.want {
				t.Errorf("HasPlaceholder(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSpanCategoryString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		category SpanCategory
		want     string
	}{
		{SpanCode, "code"},
		{SpanMath, "math"},
		{SpanRawTeX, "raw-tex"},
		{SpanComment, "comment"},
		{SpanTable, "table"},
		{SpanCategory(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.category.String(); got != tt.want {
			t.Errorf("SpanCategory(%d).String() = %q, want %q", tt.category, got, tt.want)
		}
	}
}
