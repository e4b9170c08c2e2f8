package meal

import (
	"regexp"
	"strings"

	"babybites/internal/pkg/common"
)

// ordinalLabel matches an injected leading label like "Meal 1:" or "Idea 2:"
// so titles are not rendered with a duplicated ordinal.
var ordinalLabel = regexp.MustCompile(`(?i)^\s*(meal|idea)\s*\d*\s*:\s*`)

var blankLineSplit = regexp.MustCompile(`\n{2,}`)

// Normalize parses a raw completion payload into an ordered idea list. It
// never returns an error for malformed upstream output: it degrades to the
// coarsest usable structure and reports the shortfall through Result flags.
func Normalize(raw string, format, separator string, want int) Result {
	var res Result
	switch format {
	case FormatJSON:
		res = normalizeJSON(raw)
	case FormatSeparator:
		res = normalizeSegments(strings.Split(raw, separator))
	default:
		res = normalizeSegments(blankLineSplit.Split(raw, -1))
	}
	if len(res.Ideas) < want {
		res.UnderCount = true
	}
	return res
}

type jsonIdea struct {
	Title       string   `json:"title"`
	Name        string   `json:"name"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	Tip         string   `json:"tip"`
}

func normalizeJSON(raw string) Result {
	payload := common.StripCodeFence(raw)
	if v := common.ExtractJSONValue(payload); v != "" {
		payload = v
	}

	var arr []jsonIdea
	if err := common.ParseJSON(payload, &arr); err != nil {
		// Older deployments wrapped the array in an object.
		var wrapped struct {
			Meals []jsonIdea `json:"meals"`
		}
		if err := common.ParseJSON(payload, &wrapped); err != nil || wrapped.Meals == nil {
			return blobResult(raw)
		}
		arr = wrapped.Meals
	}

	var res Result
	for _, ji := range arr {
		title := ji.Title
		if title == "" {
			title = ji.Name
		}
		title = StripLabel(title)
		if title == "" && len(ji.Ingredients) == 0 && len(ji.Steps) == 0 {
			res.Degraded = true
			continue
		}
		res.Ideas = append(res.Ideas, Idea{
			Title:       title,
			Ingredients: ji.Ingredients,
			Steps:       ji.Steps,
			Tip:         ji.Tip,
		})
	}
	if len(res.Ideas) == 0 {
		return blobResult(raw)
	}
	return res
}

func normalizeSegments(segments []string) Result {
	var res Result
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		res.Ideas = append(res.Ideas, segmentToIdea(seg))
	}
	return res
}

// segmentToIdea pulls what structure a plain-text segment offers: first line
// becomes the title, a trailing "Tip:" line becomes the tip, the rest stays
// as raw text.
func segmentToIdea(seg string) Idea {
	lines := strings.Split(seg, "\n")
	title := StripLabel(strings.TrimSpace(lines[0]))

	var body []string
	var tip string
	for _, ln := range lines[1:] {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		if tip == "" {
			if rest, ok := cutPrefixFold(ln, "tip:"); ok {
				tip = strings.TrimSpace(rest)
				continue
			}
		}
		body = append(body, ln)
	}

	return Idea{
		Title:   title,
		Tip:     tip,
		RawText: strings.Join(body, "\n"),
	}
}

// StripLabel removes a leading "Meal N:" / "Idea N:" label from s.
func StripLabel(s string) string {
	return strings.TrimSpace(ordinalLabel.ReplaceAllString(s, ""))
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
		return s[len(prefix):], true
	}
	return s, false
}

// blobResult keeps an unparseable payload visible as one unstructured idea
// instead of discarding it.
func blobResult(raw string) Result {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Result{Degraded: true}
	}
	return Result{
		Ideas:    []Idea{{RawText: raw}},
		Degraded: true,
	}
}
