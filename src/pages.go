package fichegen

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var pageCharsRe = regexp.MustCompile(`[\d,-]`)

// ParsePageNumbers turns a model answer like "42", "42-46" or "3,5-7" into a
// sorted, deduplicated page list. Anything unparseable yields an empty list;
// the caller decides whether that is fatal.
func ParsePageNumbers(answer string) []int {
	cleaned := strings.Join(pageCharsRe.FindAllString(answer, -1), "")
	if cleaned == "" {
		return nil
	}

	seen := make(map[int]bool)
	for _, part := range strings.Split(cleaned, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if strings.Contains(part, "-") {
			bounds := strings.SplitN(part, "-", 2)
			lo, err1 := strconv.Atoi(bounds[0])
			hi, err2 := strconv.Atoi(bounds[1])
			if err1 != nil || err2 != nil {
				return nil
			}
			for p := lo; p <= hi; p++ {
				seen[p] = true
			}
			continue
		}
		p, err := strconv.Atoi(part)
		if err != nil {
			return nil
		}
		seen[p] = true
	}

	if len(seen) == 0 {
		return nil
	}
	pages := make([]int, 0, len(seen))
	for p := range seen {
		pages = append(pages, p)
	}
	sort.Ints(pages)
	return pages
}
