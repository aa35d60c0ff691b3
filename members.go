package main

import (
	"context"
	"fmt"
	"log"

	"github.com/nomavan/nomavan/buddypress"
	"github.com/nomavan/nomavan/media"
	"github.com/nomavan/nomavan/store"
)

type MembersCmd struct {
	Search    string `help:"Filter by name."`
	Sort      string `help:"Sort order: active, newest or alphabetical." default:"active"`
	Page      int    `help:"Page number."`
	PerPage   int    `help:"Page size." default:"20"`
	Avatars   bool   `help:"Download avatar thumbnails."`
	AvatarDir string `help:"Directory for avatar thumbnails." default:"avatars"`
}

func (m *MembersCmd) Run(ctx *Context) error {
	db, client, err := open(ctx)
	if err != nil {
		return err
	}
	members, err := client.ListMembers(context.Background(), buddypress.MemberFilter{
		Search:  m.Search,
		Type:    m.Sort,
		Page:    m.Page,
		PerPage: m.PerPage,
	})
	if err != nil {
		return err
	}

	var avatars *media.Cache
	if m.Avatars {
		avatars = media.NewCache(m.AvatarDir, 96, store.NewAvatars(db))
	}
	for i := range members {
		member := &members[i]
		fmt.Printf("%d  %s", member.ID, member.Name)
		if member.LastActivity != "" {
			fmt.Printf("  (last seen %s)", member.LastActivity)
		}
		fmt.Println()
		if avatars == nil {
			continue
		}
		path, err := avatars.Thumbnail(context.Background(), member.AvatarURL())
		if err != nil {
			log.Printf("avatar for %s: %v", member.Name, err)
			continue
		}
		fmt.Printf("    avatar: %s\n", path)
	}
	return nil
}
