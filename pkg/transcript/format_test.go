package transcript

import (
	"strings"
	"testing"

	"github.com/hopeiseverywhere/yt-thai-learner/pkg/subtitle"
)

func TestParseVideoID(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{" dQw4w9WgXcQ ", "dQw4w9WgXcQ", false},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"https://www.youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ?rel=0", "dQw4w9WgXcQ", false},
		{"not a video", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseVideoID(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseVideoID(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseVideoID(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseVideoID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTimestamps(t *testing.T) {
	tests := []struct {
		seconds float64
		srt     string
		vtt     string
	}{
		{0, "00:00:00,000", "00:00:00.000"},
		{1.5, "00:00:01,500", "00:00:01.500"},
		{61.25, "00:01:01,250", "00:01:01.250"},
		{3661.999, "01:01:01,999", "01:01:01.999"},
	}
	for _, tt := range tests {
		if got := TimestampSRT(tt.seconds); got != tt.srt {
			t.Errorf("TimestampSRT(%v) = %q, want %q", tt.seconds, got, tt.srt)
		}
		if got := TimestampVTT(tt.seconds); got != tt.vtt {
			t.Errorf("TimestampVTT(%v) = %q, want %q", tt.seconds, got, tt.vtt)
		}
	}
}

func TestToSRT(t *testing.T) {
	out := ToSRT([]subtitle.Cue{
		{Text: "first", Start: 0, Duration: 2},
		{Text: "second", Start: 2, Duration: 1.5},
	})
	want := "1\n00:00:00,000 --> 00:00:02,000\nfirst\n\n" +
		"2\n00:00:02,000 --> 00:00:03,500\nsecond\n\n"
	if out != want {
		t.Errorf("ToSRT:\n%q\nwant:\n%q", out, want)
	}
}

func TestToVTT(t *testing.T) {
	out := ToVTT([]subtitle.Cue{{Text: "hi", Start: 1, Duration: 1}})
	if !strings.HasPrefix(out, "WEBVTT\n\n") {
		t.Errorf("missing WEBVTT header: %q", out)
	}
	if !strings.Contains(out, "00:00:01.000 --> 00:00:02.000\nhi\n") {
		t.Errorf("unexpected body: %q", out)
	}
}
