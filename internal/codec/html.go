package codec

import "strings"

// a strings.Replacer scans once, so the '&' of an inserted entity is never re-escaped
var (
	htmlEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
	htmlUnescaper = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
	)
)

// EncodeHTML replaces & < > " ' with their entities.
func EncodeHTML(text string) string {
	return htmlEscaper.Replace(text)
}

// DecodeHTML replaces the five entities produced by EncodeHTML with their
// characters. Any other entity passes through unchanged.
func DecodeHTML(encoded string) string {
	return htmlUnescaper.Replace(encoded)
}
