package extract

import (
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// PageSource supplies the raw text of a document one page at a time.
// Pages are 1-indexed; the engine reads them in increasing order to
// keep the index's insertion order deterministic.
type PageSource interface {
	PageCount() int
	PageText(ctx context.Context, pageNumber int) (string, error)
}

// TextPages is a PageSource over already-extracted page text.
type TextPages []string

func (p TextPages) PageCount() int { return len(p) }

func (p TextPages) PageText(_ context.Context, pageNumber int) (string, error) {
	if pageNumber < 1 || pageNumber > len(p) {
		return "", fmt.Errorf("page %d out of range 1..%d", pageNumber, len(p))
	}
	return p[pageNumber-1], nil
}

// HTMLPages is a PageSource over per-page HTML markup; visible text is
// extracted on read.
type HTMLPages []string

func (p HTMLPages) PageCount() int { return len(p) }

func (p HTMLPages) PageText(_ context.Context, pageNumber int) (string, error) {
	if pageNumber < 1 || pageNumber > len(p) {
		return "", fmt.Errorf("page %d out of range 1..%d", pageNumber, len(p))
	}
	text, err := TextFromHTML(strings.NewReader(p[pageNumber-1]))
	if err != nil {
		return "", fmt.Errorf("page %d: %w", pageNumber, err)
	}
	return text, nil
}

// TextFromHTML extracts the visible text of an HTML page using the
// standard tokenizer, skipping script and style content and collapsing
// whitespace.
func TextFromHTML(body io.Reader) (string, error) {
	tokenizer := html.NewTokenizer(body)
	var textBuilder strings.Builder
	inScript := false
	inStyle := false

	for {
		tokenType := tokenizer.Next()

		switch tokenType {
		case html.ErrorToken:
			if tokenizer.Err() == io.EOF {
				return cleanText(textBuilder.String()), nil
			}
			return "", tokenizer.Err()

		case html.StartTagToken:
			token := tokenizer.Token()
			switch token.Data {
			case "script":
				inScript = true
			case "style":
				inStyle = true
			}

		case html.EndTagToken:
			token := tokenizer.Token()
			switch token.Data {
			case "script":
				inScript = false
			case "style":
				inStyle = false
			}

		case html.TextToken:
			if !inScript && !inStyle {
				text := strings.TrimSpace(tokenizer.Token().Data)
				if text != "" {
					textBuilder.WriteString(text + " ")
				}
			}
		}
	}
}

// cleanText removes excessive whitespace
func cleanText(input string) string {
	return strings.Join(strings.Fields(input), " ")
}
