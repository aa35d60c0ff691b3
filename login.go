package main

import (
	"context"
	"fmt"

	"github.com/nomavan/nomavan/store"
)

type LoginCmd struct {
	Username string `required:"" help:"WordPress username."`
	Password string `required:"" help:"WordPress password." env:"NOMAVAN_PASSWORD"`
}

func (l *LoginCmd) Run(ctx *Context) error {
	db, client, err := open(ctx)
	if err != nil {
		return err
	}
	result, err := client.Login(context.Background(), l.Username, l.Password)
	if err != nil {
		return err
	}
	sessions := store.NewSessions(db)
	if err := sessions.Set(result.Token, result.UserID); err != nil {
		return err
	}
	if result.UserID == 0 {
		// some JWT plugins omit the user id from the token response
		me, err := client.Me(context.Background())
		if err != nil {
			return err
		}
		if err := sessions.Set(result.Token, me.ID); err != nil {
			return err
		}
	}
	name := result.DisplayName
	if name == "" {
		name = l.Username
	}
	fmt.Printf("logged in as %s\n", name)
	return nil
}
