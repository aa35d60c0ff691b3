package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-json-experiment/json"

	"github.com/nomavan/nomavan/buddypress"
	"github.com/nomavan/nomavan/feed"
	"github.com/nomavan/nomavan/internal/to"
	"github.com/nomavan/nomavan/store"
)

type FeedCmd struct {
	Type    []string      `help:"Activity types to include, or \"all\"." default:"all"`
	Scope   string        `help:"Feed scope: just-me, friends, groups or favorites."`
	Search  string        `help:"Full-text search terms."`
	User    int           `help:"Only activities by this user id."`
	PerPage int           `help:"Page size." default:"20"`
	Pages   int           `help:"Number of pages to fetch." default:"1"`
	JSON    bool          `help:"Emit raw activities as JSON."`
	Watch   bool          `help:"Keep refreshing until interrupted."`
	Every   time.Duration `help:"Refresh interval in watch mode." default:"30s"`
}

func (f *FeedCmd) Run(ctx *Context) error {
	db, client, err := open(ctx)
	if err != nil {
		return err
	}
	snapshots := store.NewSnapshots(db)

	ctrl := feed.NewController(client, true)
	ctrl.SetFilter(buddypress.ActivityFilter{
		Type:    f.Type,
		Scope:   f.Scope,
		Search:  f.Search,
		UserID:  f.User,
		PerPage: f.PerPage,
	})
	signature, err := ctrl.Filter().Signature()
	if err != nil {
		return err
	}

	if err := ctrl.Load(context.Background()); err != nil {
		if errors.Is(err, buddypress.ErrUnauthorized) {
			return err
		}
		return f.offline(snapshots, signature, err)
	}
	for p := 1; p < f.Pages; p++ {
		if err := ctrl.NextPage(context.Background()); err != nil {
			return err
		}
	}
	if body, err := json.Marshal(ctrl.Activities()); err == nil {
		if err := snapshots.Put(signature, body); err != nil {
			log.Printf("snapshot: %v", err)
		}
	}

	if f.JSON {
		return to.JSON(os.Stdout, ctrl.Activities())
	}
	printViews(ctrl.Views())

	if f.Watch {
		return f.watch(ctrl)
	}
	return nil
}

// offline falls back to the stored snapshot for this filter. The
// original fetch error is returned when no snapshot exists.
func (f *FeedCmd) offline(snapshots *store.Snapshots, signature string, cause error) error {
	snap, err := snapshots.Get(signature)
	if err != nil || snap == nil {
		return cause
	}
	var activities []buddypress.Activity
	if err := json.Unmarshal(snap.Body, &activities); err != nil {
		return cause
	}
	if f.JSON {
		return to.JSON(os.Stdout, activities)
	}
	fmt.Printf("offline: showing snapshot from %s\n", snap.FetchedAt.Format(time.RFC822))
	printViews(feed.RenderList(activities, true))
	return nil
}

// watch re-renders on every controller update until interrupted.
func (f *FeedCmd) watch(ctrl *feed.Controller) error {
	sub := ctrl.Subscribe(false)
	defer sub.Cancel()

	go func() {
		ticker := time.NewTicker(f.Every)
		defer ticker.Stop()
		for range ticker.C {
			if err := ctrl.Refresh(context.Background()); err != nil {
				log.Printf("refresh: %v", err)
			}
		}
	}()

	for payload := range sub.C {
		if payload.Event != "updated" {
			continue
		}
		fmt.Printf("\n-- %s --\n", time.Now().Format(time.Kitchen))
		printViews(ctrl.Views())
	}
	return nil
}
