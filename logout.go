package main

import (
	"fmt"

	"github.com/nomavan/nomavan/store"
)

type LogoutCmd struct{}

func (l *LogoutCmd) Run(ctx *Context) error {
	db, err := store.Open(ctx.StatePath)
	if err != nil {
		return err
	}
	if err := store.NewSessions(db).Clear(); err != nil {
		return err
	}
	fmt.Println("logged out")
	return nil
}
