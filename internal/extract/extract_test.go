package extract_test

import (
	"strings"
	"testing"

	"github.com/chriscorrea/textutils/internal/extract"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head>
    <title>Test Article</title>
    <style>body { color: red; }</style>
</head>
<body>
    <header>
        <h1>Site Header</h1>
        <nav>Navigation</nav>
    </header>
    <main>
        <article>
            <h1>Main Article Title</h1>
            <p>This is the main content of the article. It contains important information about text utilities and how they transform words.</p>
            <p>This is a second paragraph with <strong>bold text</strong> and <em>italic text</em>. Readers care about the body of the article far more than the chrome around it.</p>
            <ul>
                <li>First list item</li>
                <li>Second list item</li>
            </ul>
        </article>
    </main>
    <aside class="sidebar">
        <p>This is sidebar content that should be filtered out.</p>
    </aside>
    <footer>
        <p>Footer content</p>
    </footer>
</body>
</html>`

func TestFromHTML(t *testing.T) {
	tests := []struct {
		name        string
		html        string
		opts        extract.Options
		expectError bool
		contains    []string
		notContains []string
	}{
		{
			name:        "readable article as text",
			html:        articleHTML,
			opts:        extract.Options{},
			contains:    []string{"main content", "bold text", "First list item"},
			notContains: []string{"Site Header", "sidebar content", "Footer content", "<p>"},
		},
		{
			name:        "readable article as markdown",
			html:        articleHTML,
			opts:        extract.Options{Markdown: true},
			contains:    []string{"main content", "**bold text**", "First list item"},
			notContains: []string{"sidebar content", "Footer content"},
		},
		{
			name:        "selector as text",
			html:        articleHTML,
			opts:        extract.Options{Selector: ".sidebar"},
			contains:    []string{"sidebar content"},
			notContains: []string{"Main Article Title", "Footer content"},
		},
		{
			name:     "selector as markdown",
			html:     articleHTML,
			opts:     extract.Options{Selector: "ul", Markdown: true},
			contains: []string{"First list item", "Second list item"},
		},
		{
			name:        "include all as text drops styles",
			html:        articleHTML,
			opts:        extract.Options{IncludeAll: true},
			contains:    []string{"Site Header", "Main Article Title", "Footer content"},
			notContains: []string{"color: red", "<footer>"},
		},
		{
			name:     "include all as markdown",
			html:     articleHTML,
			opts:     extract.Options{IncludeAll: true, Markdown: true},
			contains: []string{"# Main Article Title", "Footer content"},
		},
		{
			name:        "non-existent selector",
			html:        articleHTML,
			opts:        extract.Options{Selector: ".non-existent"},
			expectError: true,
		},
		{
			name:        "invalid selector",
			html:        articleHTML,
			opts:        extract.Options{Selector: ">>invalid<<"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := extract.FromHTML(strings.NewReader(tt.html), tt.opts)

			if tt.expectError {
				if err == nil {
					t.Errorf("FromHTML() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("FromHTML() unexpected error: %v", err)
			}

			for _, expected := range tt.contains {
				if !strings.Contains(result, expected) {
					t.Errorf("FromHTML() result should contain %q but doesn't.\nResult: %s", expected, result)
				}
			}
			for _, notExpected := range tt.notContains {
				if strings.Contains(result, notExpected) {
					t.Errorf("FromHTML() result should not contain %q but does.\nResult: %s", notExpected, result)
				}
			}
		})
	}
}

func TestFromHTMLTidiesWhitespace(t *testing.T) {
	html := `<div>
	    <p>   first   </p>


	    <p>second</p>
	</div>`

	result, err := extract.FromHTML(strings.NewReader(html), extract.Options{Selector: "div"})
	if err != nil {
		t.Fatalf("FromHTML() unexpected error: %v", err)
	}
	if result != "first\n\nsecond" {
		t.Errorf("FromHTML() = %q, want %q", result, "first\n\nsecond")
	}
}
