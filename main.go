package main

import (
	"fmt"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/nomavan/nomavan/buddypress"
	"github.com/nomavan/nomavan/feed"
	"github.com/nomavan/nomavan/internal/humanize"
	"github.com/nomavan/nomavan/store"
)

type Context struct {
	Debug bool

	BaseURL   string
	StatePath string
}

var cli struct {
	Debug bool   `help:"Enable debug mode."`
	URL   string `help:"WordPress REST root." env:"NOMAVAN_URL" default:"https://nomavan.app/wp-json"`
	State string `help:"Path to the local state database." env:"NOMAVAN_STATE" default:"nomavan.db"`

	Login     LoginCmd     `cmd:"" help:"Log in and store the session."`
	Logout    LogoutCmd    `cmd:"" help:"Clear the stored session."`
	Feed      FeedCmd      `cmd:"" help:"Show the activity feed."`
	Show      ShowCmd      `cmd:"" help:"Show a single activity."`
	Favourite FavouriteCmd `cmd:"" help:"Toggle a favourite on an activity."`
	Meetup    MeetupCmd    `cmd:"" help:"List and manage meetups."`
	Members   MembersCmd   `cmd:"" help:"Show the member directory."`
	Post      PostCmd      `cmd:"" help:"Publish to the feed."`
	Nearby    NearbyCmd    `cmd:"" help:"List feed entries near a position."`
	Sync      SyncCmd      `cmd:"" help:"Prefetch feed, meetups and members for offline use."`
}

func main() {
	godotenv.Load()
	ctx := kong.Parse(&cli)
	err := ctx.Run(&Context{Debug: cli.Debug, BaseURL: cli.URL, StatePath: cli.State})
	ctx.FatalIfErrorf(err)
}

// open opens the local state database and builds an API client whose
// bearer token comes from the stored session.
func open(ctx *Context) (*gorm.DB, *buddypress.Client, error) {
	db, err := store.Open(ctx.StatePath)
	if err != nil {
		return nil, nil, err
	}
	return db, buddypress.New(ctx.BaseURL, store.NewSessions(db)), nil
}

func printViews(views []feed.View) {
	now := time.Now()
	for _, v := range views {
		fmt.Printf("[%s] %s", v.Badge, v.Title)
		if !v.Time.IsZero() {
			fmt.Printf("  (%s)", humanize.RelativeTime(v.Time, now))
		}
		fmt.Println()
		for _, line := range v.Lines {
			fmt.Printf("    %s\n", line)
		}
	}
}
