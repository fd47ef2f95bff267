package extract_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statement-viewer/backend/internal/extract"
)

func TestTextFromHTML(t *testing.T) {
	page := `<html><head>
		<style>body { color: red; }</style>
		<script>var hidden = "not text";</script>
	</head><body>
		<h1>GAS VOLUME STATEMENT</h1>
		<p>Name: Hill Creek Unit 10-28F</p>
	</body></html>`

	text, err := extract.TextFromHTML(strings.NewReader(page))
	require.NoError(t, err)

	assert.Contains(t, text, "Name: Hill Creek Unit 10-28F")
	assert.NotContains(t, text, "color: red")
	assert.NotContains(t, text, "hidden")
}

func TestTextFromHTMLCollapsesWhitespace(t *testing.T) {
	text, err := extract.TextFromHTML(strings.NewReader("<p>a</p>\n\n<p>b   c</p>"))
	require.NoError(t, err)
	assert.Equal(t, "a b c", text)
}

func TestTextPages(t *testing.T) {
	src := extract.TextPages{"page one", "page two"}

	assert.Equal(t, 2, src.PageCount())

	text, err := src.PageText(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "page two", text)

	_, err = src.PageText(context.Background(), 0)
	assert.Error(t, err)
	_, err = src.PageText(context.Background(), 3)
	assert.Error(t, err)
}

func TestHTMLPages(t *testing.T) {
	src := extract.HTMLPages{"<p>Name: Well One 1-2</p>"}

	assert.Equal(t, 1, src.PageCount())

	text, err := src.PageText(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Name: Well One 1-2", text)

	_, err = src.PageText(context.Background(), 2)
	assert.Error(t, err)
}
