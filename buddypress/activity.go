package buddypress

import (
	"strings"
	"time"

	"github.com/go-json-experiment/json"

	"github.com/nomavan/nomavan/internal/htmltext"
	"github.com/nomavan/nomavan/internal/humanize"
)

// Activity is a single feed event as the server sends it. Records are
// created server side and read only here; the only mutation the app
// performs is the favourite toggle.
type Activity struct {
	ID             int           `json:"id"`
	Kind           Kind          `json:"type"`
	Date           string        `json:"date"`
	UserID         int           `json:"user_id"`
	UserName       string        `json:"user_profile"`
	UserAvatar     string        `json:"user_avatar"`
	Content        json.RawValue `json:"content"`
	Favorited      bool          `json:"favorited"`
	FavoritedCount int           `json:"favorited_count"`
	Primary        Payload       `json:"primary_item"`
	Secondary      Payload       `json:"secondary_item"`
}

// Time returns the creation timestamp, or the zero time if the server
// sent something unparseable.
func (a *Activity) Time() time.Time {
	return humanize.ParseWire(a.Date)
}

// AvatarURL returns the author's avatar URL. The server emits
// scheme-relative gravatar URLs which must be prefixed before use.
func (a *Activity) AvatarURL() string {
	if strings.HasPrefix(a.UserAvatar, "//") {
		return "https:" + a.UserAvatar
	}
	return a.UserAvatar
}

// ContentText returns the activity body as plain text. The server
// sends content either as a bare string or as a rendered-HTML object,
// depending on the endpoint that produced the record.
func (a *Activity) ContentText() string {
	if len(a.Content) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(a.Content, &s); err == nil {
		return htmltext.Strip(s)
	}
	var rendered struct {
		Rendered string `json:"rendered"`
	}
	if err := json.Unmarshal(a.Content, &rendered); err == nil {
		return htmltext.Strip(rendered.Rendered)
	}
	return ""
}
