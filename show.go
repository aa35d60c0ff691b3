package main

import (
	"context"
	"fmt"
	"os"

	"github.com/nomavan/nomavan/feed"
	"github.com/nomavan/nomavan/internal/to"
)

type ShowCmd struct {
	ID   int  `arg:"" help:"Activity id."`
	JSON bool `help:"Emit the raw activity as JSON."`
}

func (s *ShowCmd) Run(ctx *Context) error {
	_, client, err := open(ctx)
	if err != nil {
		return err
	}
	activity, err := client.GetActivity(context.Background(), s.ID)
	if err != nil {
		return err
	}
	if s.JSON {
		return to.JSON(os.Stdout, activity)
	}
	view, ok := feed.Render(activity)
	if !ok {
		view = feed.Fallback(activity)
	}
	printViews([]feed.View{view})
	if text := activity.ContentText(); text != "" {
		fmt.Println()
		fmt.Println(text)
	}
	return nil
}
