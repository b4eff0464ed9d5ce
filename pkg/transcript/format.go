package transcript

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hopeiseverywhere/yt-thai-learner/pkg/subtitle"
)

var (
	videoIDRE = regexp.MustCompile(`(?:v=|youtu\.be/|shorts/|embed/)([A-Za-z0-9_-]{11})`)
	bareIDRE  = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
)

// ParseVideoID extracts the 11-character YouTube video ID from a watch,
// youtu.be, shorts or embed URL, or validates an already-bare ID.
func ParseVideoID(urlOrID string) (string, error) {
	urlOrID = strings.TrimSpace(urlOrID)
	if bareIDRE.MatchString(urlOrID) {
		return urlOrID, nil
	}
	if m := videoIDRE.FindStringSubmatch(urlOrID); m != nil {
		return m[1], nil
	}
	return "", fmt.Errorf("could not parse video id from %q", urlOrID)
}

// TimestampSRT formats seconds as HH:MM:SS,mmm.
func TimestampSRT(s float64) string {
	return formatTimestamp(s, ",")
}

// TimestampVTT formats seconds as HH:MM:SS.mmm.
func TimestampVTT(s float64) string {
	return formatTimestamp(s, ".")
}

func formatTimestamp(s float64, sep string) string {
	if s < 0 {
		s = 0
	}
	whole := int(s)
	millis := int((s-float64(whole))*1000 + 0.5)
	if millis >= 1000 {
		whole++
		millis -= 1000
	}
	return fmt.Sprintf("%02d:%02d:%02d%s%03d", whole/3600, (whole%3600)/60, whole%60, sep, millis)
}

// ToSRT renders cues as a SubRip document.
func ToSRT(cues []subtitle.Cue) string {
	var b strings.Builder
	for i, c := range cues {
		fmt.Fprintf(&b, "%d\n%s --> %s\n%s\n\n",
			i+1, TimestampSRT(c.Start), TimestampSRT(c.Start+c.Duration), strings.TrimSpace(c.Text))
	}
	return b.String()
}

// ToVTT renders cues as a WebVTT document.
func ToVTT(cues []subtitle.Cue) string {
	var b strings.Builder
	b.WriteString("WEBVTT\n\n")
	for _, c := range cues {
		fmt.Fprintf(&b, "%s --> %s\n%s\n\n",
			TimestampVTT(c.Start), TimestampVTT(c.Start+c.Duration), strings.TrimSpace(c.Text))
	}
	return b.String()
}
