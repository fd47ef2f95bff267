package index_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/statement-viewer/backend/internal/index"
)

func TestNormalizeWords(t *testing.T) {
	cases := map[string]string{
		"hill creek unit":          "HILL CREEK UNIT",
		"  Hill   Creek  ":         "HILL CREEK",
		"Hill/Creek (Unit) #10-28": "HILL CREEK UNIT 10-28",
		"10-28":                    "10-28",
		"":                         "",
		"!!!":                      "",
		"a\tb\nc":                  "A B C",
	}

	for input, expected := range cases {
		assert.Equal(t, expected, index.NormalizeWords(input), "input %q", input)
	}
}

func TestNormalizeWordsIdempotent(t *testing.T) {
	inputs := []string{
		"Hill Creek Unit 10-28F",
		"  mixed   CASE with (punctuation)! ",
		"",
		"----",
		"désolé über",
		"5-12 ",
	}

	for _, input := range inputs {
		once := index.NormalizeWords(input)
		assert.Equal(t, once, index.NormalizeWords(once), "input %q", input)
	}
}

func TestLettersOnly(t *testing.T) {
	assert.Equal(t, "HILLCREEK", index.LettersOnly("HILL CREEK 10-28"))
	assert.Equal(t, "", index.LettersOnly("10-28"))
	assert.Equal(t, "", index.LettersOnly(""))
}
