package main

import (
	"context"
	"fmt"

	"github.com/nomavan/nomavan/buddypress"
	"github.com/nomavan/nomavan/feed"
	"github.com/nomavan/nomavan/internal/algorithms"
	"github.com/nomavan/nomavan/internal/geo"
)

type NearbyCmd struct {
	Lat     float64 `arg:"" help:"Your latitude."`
	Lng     float64 `arg:"" help:"Your longitude."`
	Radius  float64 `help:"Maximum distance in km." default:"50"`
	PerPage int     `help:"How many feed entries to scan." default:"50"`
}

type placed struct {
	view   feed.View
	meters float64
}

func (n *NearbyCmd) Run(ctx *Context) error {
	_, client, err := open(ctx)
	if err != nil {
		return err
	}
	activities, err := client.ListActivities(context.Background(), buddypress.ActivityFilter{
		Type:    buddypress.FilterAllTypes(),
		PerPage: n.PerPage,
	})
	if err != nil {
		return err
	}

	nearby := algorithms.FilterMap(activities, func(a buddypress.Activity) (placed, bool) {
		lat, lng, ok := feed.Coordinates(&a)
		if !ok {
			return placed{}, false
		}
		meters, ok := geo.Distance(n.Lat, n.Lng, lat, lng)
		if !ok || meters > n.Radius*1000 {
			return placed{}, false
		}
		view, ok := feed.Render(&a)
		if !ok {
			view = feed.Fallback(&a)
		}
		return placed{view: view, meters: meters}, true
	})
	algorithms.SortBy(nearby, func(p placed) float64 { return p.meters })

	if len(nearby) == 0 {
		fmt.Printf("nothing within %.0f km\n", n.Radius)
		return nil
	}
	for _, p := range nearby {
		fmt.Printf("%6.1f km  [%s] %s\n", p.meters/1000, p.view.Badge, p.view.Title)
		for _, line := range p.view.Lines {
			fmt.Printf("           %s\n", line)
		}
	}
	return nil
}
