package report

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/harrison/careerfit/internal/models"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

const htmlHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Assessment Results</title>
<style>
body { font-family: sans-serif; max-width: 52rem; margin: 2rem auto; line-height: 1.5; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 0.3rem 0.6rem; }
blockquote { color: #444; border-left: 4px solid #ccc; margin-left: 0; padding-left: 1rem; }
</style>
</head>
<body>
`

const htmlTail = `</body>
</html>
`

// HTML renders the Markdown report into a standalone HTML page
func HTML(r *models.AssessmentResult) (string, error) {
	body, err := MarkdownToHTML(Markdown(r))
	if err != nil {
		return "", err
	}
	return htmlHead + body + htmlTail, nil
}

// MarkdownToHTML converts GitHub-flavored Markdown to an HTML fragment
func MarkdownToHTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return buf.String(), nil
}
