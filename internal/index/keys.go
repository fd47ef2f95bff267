package index

import (
	"regexp"
	"strconv"
	"strings"
)

var digitRun = regexp.MustCompile(`[0-9]+`)

// NumberKey derives the numeric identity key of a record name: the
// first two digit runs joined as "A-B", a single run as "A", or ""
// when the text carries no digits. Each run is parsed as an integer,
// which discards leading zeros ("01-29" becomes "1-29").
//
// The key is always built from the first two digit runs wherever they
// occur in the text; a stray number ahead of the real well/unit number
// produces a wrong key. Known limitation, kept as-is.
func NumberKey(text string) string {
	var nums []string
	for _, run := range digitRun.FindAllString(text, -1) {
		n, err := strconv.Atoi(run)
		if err != nil {
			continue
		}
		nums = append(nums, strconv.Itoa(n))
		if len(nums) == 2 {
			break
		}
	}
	switch len(nums) {
	case 0:
		return ""
	case 1:
		return nums[0]
	default:
		return nums[0] + "-" + nums[1]
	}
}

// SplitNumberKey splits an "A-B" key into its integer components.
// ok is false for single-number keys and anything else not in pair
// form.
func SplitNumberKey(key string) (a, b int, ok bool) {
	i := strings.IndexByte(key, '-')
	if i < 0 {
		return 0, 0, false
	}
	a, errA := strconv.Atoi(key[:i])
	b, errB := strconv.Atoi(key[i+1:])
	if errA != nil || errB != nil {
		return 0, 0, false
	}
	return a, b, true
}

// TokensKey derives the letter-only fuzzy identity key of a name: the
// name is normalized, words containing a digit are dropped (removes
// number chunks such as "10-28F"), and the remaining letters are
// concatenated. "HILL CREEK UNIT 10-28F" -> "HILLCREEKUNIT".
func TokensKey(nameRaw string) string {
	var b strings.Builder
	for _, word := range strings.Split(NormalizeWords(nameRaw), " ") {
		if strings.ContainsAny(word, "0123456789") {
			continue
		}
		b.WriteString(LettersOnly(word))
	}
	return b.String()
}
