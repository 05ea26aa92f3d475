package domain

import "strings"

// VideoType classifies a video by its format.
type VideoType string

const (
	VideoWebinar    VideoType = "WEBINAR"
	VideoWebcast    VideoType = "WEBCAST"
	VideoPodcast    VideoType = "PODCAST"
	VideoConference VideoType = "CONFERENCE"
	VideoMeetup     VideoType = "MEETUP"
	VideoSeminar    VideoType = "SEMINAR"
	VideoUserGroup  VideoType = "USER_GROUP"
	VideoPanel      VideoType = "PANEL"
	VideoInterview  VideoType = "INTERVIEW"
	VideoHowTo      VideoType = "HOW_TO"
	VideoDemo       VideoType = "DEMO"
)

// DefaultMinWebinarDuration is the duration in seconds above which an
// unclassified or demo-like video is treated as a webinar.
const DefaultMinWebinarDuration int64 = 1800

// ParamMinWebinarDuration is the application parameter overriding
// DefaultMinWebinarDuration.
const ParamMinWebinarDuration = "content.video.min-webinar-duration"

var videoTypes = newVocabulary(
	term[VideoType]{code: VideoWebinar, value: "Webinar"},
	term[VideoType]{code: VideoWebcast, value: "Webcast"},
	term[VideoType]{code: VideoPodcast, value: "Podcast"},
	term[VideoType]{code: VideoConference, value: "Conference"},
	term[VideoType]{code: VideoMeetup, value: "Meetup"},
	term[VideoType]{code: VideoSeminar, value: "Seminar"},
	term[VideoType]{code: VideoUserGroup, value: "User Group"},
	term[VideoType]{code: VideoPanel, value: "Panel"},
	term[VideoType]{code: VideoInterview, value: "Interview"},
	term[VideoType]{code: VideoHowTo, value: "How-To"},
	term[VideoType]{code: VideoDemo, value: "Demo"},
)

// videoKeywords is tested in order; the first hit wins.
var videoKeywords = []struct {
	videoType VideoType
	keywords  []string
}{
	{VideoWebinar, []string{"webinar"}},
	{VideoWebcast, []string{"webcast"}},
	{VideoPodcast, []string{"podcast"}},
	{VideoConference, []string{"conference"}},
	{VideoMeetup, []string{"meetup"}},
	{VideoSeminar, []string{"seminar"}},
	{VideoUserGroup, []string{"user group", "user-group"}},
	{VideoPanel, []string{"panel"}},
	{VideoInterview, []string{"interview"}},
	{VideoHowTo, []string{"how to", "how-to"}},
	{VideoDemo, []string{"demo"}},
}

// Value returns the display value of the video type.
func (t VideoType) Value() string { return videoTypes.value(t) }

// String implements fmt.Stringer with the display value.
func (t VideoType) String() string { return t.Value() }

// GuessVideoType infers the type of a video from its title or description.
//
// Keywords are matched in priority order. A video longer than
// minWebinarSecs becomes a webinar when nothing matched or when the match
// was only a demo or how-to. Anything left unmatched is a demo.
func GuessVideoType(text string, durationSecs, minWebinarSecs int64) VideoType {
	lower := strings.ToLower(text)

	var guess VideoType
	for _, kw := range videoKeywords {
		if containsAny(lower, kw.keywords) {
			guess = kw.videoType
			break
		}
	}

	if durationSecs > minWebinarSecs &&
		(guess == "" || guess == VideoDemo || guess == VideoHowTo) {
		guess = VideoWebinar
	}

	if guess == "" {
		guess = VideoDemo
	}
	return guess
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// VideoTypeFromValue looks a video type up by its display value.
func VideoTypeFromValue(value string) (VideoType, bool) {
	return videoTypes.fromValue(value)
}

// VideoTypeFromCode looks a video type up by its code.
func VideoTypeFromCode(code string) (VideoType, bool) {
	return videoTypes.fromCode(code)
}

// ContainsVideoType reports whether value is a known display value.
func ContainsVideoType(value string) bool {
	return videoTypes.contains(value)
}

// VideoTypes lists every video type in declaration order.
func VideoTypes() []VideoType { return videoTypes.codes() }
