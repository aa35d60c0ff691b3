package main

import (
	"context"
	"fmt"
)

type FavouriteCmd struct {
	ID int `arg:"" help:"Activity id."`
}

func (f *FavouriteCmd) Run(ctx *Context) error {
	_, client, err := open(ctx)
	if err != nil {
		return err
	}
	activity, err := client.FavoriteActivity(context.Background(), f.ID)
	if err != nil {
		return err
	}
	if activity.Favorited {
		fmt.Printf("favourited %d (%d total)\n", activity.ID, activity.FavoritedCount)
	} else {
		fmt.Printf("unfavourited %d (%d total)\n", activity.ID, activity.FavoritedCount)
	}
	return nil
}
