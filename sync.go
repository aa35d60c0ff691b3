package main

import (
	"context"
	"fmt"

	"github.com/go-json-experiment/json"
	"golang.org/x/sync/errgroup"

	"github.com/nomavan/nomavan/buddypress"
	"github.com/nomavan/nomavan/store"
)

type SyncCmd struct {
	PerPage int `help:"Page size per resource." default:"20"`
}

// Run prefetches the feed, the meetup list and the member directory
// concurrently and stores a feed snapshot for offline use.
func (s *SyncCmd) Run(ctx *Context) error {
	db, client, err := open(ctx)
	if err != nil {
		return err
	}
	snapshots := store.NewSnapshots(db)

	var (
		activities []buddypress.Activity
		groups     []buddypress.Group
		members    []buddypress.Member
	)
	g, gctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		filter := buddypress.ActivityFilter{
			Type:    buddypress.FilterAllTypes(),
			PerPage: s.PerPage,
		}
		var err error
		activities, err = client.ListActivities(gctx, filter)
		if err != nil {
			return err
		}
		signature, err := filter.Signature()
		if err != nil {
			return err
		}
		body, err := json.Marshal(activities)
		if err != nil {
			return err
		}
		return snapshots.Put(signature, body)
	})
	g.Go(func() error {
		var err error
		groups, err = client.ListGroups(gctx, buddypress.GroupFilter{PerPage: s.PerPage})
		return err
	})
	g.Go(func() error {
		var err error
		members, err = client.ListMembers(gctx, buddypress.MemberFilter{PerPage: s.PerPage})
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}
	fmt.Printf("synced %d activities, %d meetups, %d members\n",
		len(activities), len(groups), len(members))
	return nil
}
