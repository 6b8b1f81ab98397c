package export

import (
	"encoding/base64"
	"html"
	"regexp"
	"strings"
)

var (
	headPattern     = regexp.MustCompile(`(?is)<head>.*?</head>`)
	imgPattern      = regexp.MustCompile(`<img[^>]*src="data:image/png;base64,([A-Za-z0-9+/=]+)"[^>]*>`)
	blockEndPattern = regexp.MustCompile(`(?i)</(div|p|h1|h2|h3|tr|li)>|<br\s*/?>`)
	tagPattern      = regexp.MustCompile(`<[^>]*>`)
)

// condense reduces styled report markup to printable text lines plus the
// embedded PNG images, in document order. The visual styling is dropped;
// the text content and images survive verbatim.
func condense(markup string) ([]string, [][]byte) {
	text := headPattern.ReplaceAllString(markup, "")

	var images [][]byte
	text = imgPattern.ReplaceAllStringFunc(text, func(tag string) string {
		encoded := imgPattern.FindStringSubmatch(tag)[1]
		img, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return ""
		}
		images = append(images, img)
		return ""
	})

	text = blockEndPattern.ReplaceAllString(text, "\n")
	text = tagPattern.ReplaceAllString(text, "")
	text = html.UnescapeString(text)

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, images
}
