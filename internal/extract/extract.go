// Package extract turns HTML input into plain text or Markdown before any
// transformation or analysis runs on it.
package extract

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// Options selects what part of the HTML is kept and how it is rendered.
type Options struct {
	Selector   string // CSS selector; overrides IncludeAll when set
	IncludeAll bool   // keep the whole page instead of the readable article
	Markdown   bool   // render Markdown instead of plain text

	// DropBoilerplate removes paragraphs that read like navigation, bylines,
	// or legal footers after extraction.
	DropBoilerplate bool
}

// FromHTML extracts text from the HTML in content.
//
// With a selector only matching elements are kept; with IncludeAll the whole
// document is kept; otherwise go-readability isolates the main article.
func FromHTML(content io.Reader, opts Options) (string, error) {
	var (
		text string
		err  error
	)
	switch {
	case opts.Selector != "":
		text, err = extractWithSelector(content, opts.Selector, opts.Markdown)
	case opts.IncludeAll:
		text, err = extractAll(content, opts.Markdown)
	default:
		text, err = extractMainContent(content, opts.Markdown)
	}
	if err != nil {
		return "", err
	}

	if opts.DropBoilerplate {
		text = dropBoilerplate(text)
	}
	return text, nil
}

// extractMainContent uses go-readability to extract the main article content
func extractMainContent(content io.Reader, markdown bool) (string, error) {
	article, err := readability.FromReader(content, &url.URL{})
	if err != nil {
		return "", fmt.Errorf("failed to extract main content: %w", err)
	}

	if markdown {
		return convertToMarkdown(article.Content)
	}
	return tidyText(article.TextContent), nil
}

// extractWithSelector uses a CSS selector to extract specific content
func extractWithSelector(content io.Reader, selector string, markdown bool) (string, error) {
	doc, err := goquery.NewDocumentFromReader(content)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	selection := doc.Find(selector)
	if selection.Length() == 0 {
		return "", fmt.Errorf("no elements found matching selector: %s", selector)
	}

	var parts []string
	selection.Each(func(i int, s *goquery.Selection) {
		if !markdown {
			parts = append(parts, s.Text())
			return
		}
		html, err := s.Html()
		if err == nil {
			// wrap each element to preserve structure
			tagName := goquery.NodeName(s)
			parts = append(parts, fmt.Sprintf("<%s>%s</%s>", tagName, html, tagName))
		}
	})

	if !markdown {
		return tidyText(strings.Join(parts, "\n\n")), nil
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("failed to extract HTML from selection")
	}
	return convertToMarkdown(strings.Join(parts, "\n"))
}

// extractAll keeps the whole document
func extractAll(content io.Reader, markdown bool) (string, error) {
	if markdown {
		htmlBytes, err := io.ReadAll(content)
		if err != nil {
			return "", fmt.Errorf("failed to read HTML content: %w", err)
		}
		return convertToMarkdown(string(htmlBytes))
	}

	doc, err := goquery.NewDocumentFromReader(content)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	// script and style bodies are text nodes too
	doc.Find("script, style, noscript").Remove()
	return tidyText(doc.Text()), nil
}

// convertToMarkdown converts HTML string to clean Markdown
func convertToMarkdown(htmlString string) (string, error) {
	converter := md.NewConverter("", true, nil)

	markdown, err := converter.ConvertString(htmlString)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to Markdown: %w", err)
	}

	cleaned := strings.TrimSpace(markdown)
	for strings.Contains(cleaned, "\n\n\n") {
		cleaned = strings.ReplaceAll(cleaned, "\n\n\n", "\n\n")
	}
	return cleaned, nil
}

// tidyText trims every line and collapses runs of blank lines into one
func tidyText(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
