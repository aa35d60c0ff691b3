package main

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/nomavan/nomavan/buddypress"
	"github.com/nomavan/nomavan/internal/geo"
	"github.com/nomavan/nomavan/internal/humanize"
	"github.com/nomavan/nomavan/store"
)

type MeetupCmd struct {
	List    MeetupListCmd    `cmd:"" help:"List meetups."`
	Create  MeetupCreateCmd  `cmd:"" help:"Create a meetup."`
	Join    MeetupJoinCmd    `cmd:"" help:"Join a meetup."`
	Leave   MeetupLeaveCmd   `cmd:"" help:"Leave a meetup."`
	Request MeetupRequestCmd `cmd:"" help:"Request membership of a private meetup."`
}

type MeetupListCmd struct {
	Search  string  `help:"Filter by name."`
	Mine    bool    `help:"Only meetups you belong to."`
	Page    int     `help:"Page number."`
	PerPage int     `help:"Page size." default:"20"`
	Lat     float64 `help:"Show distances from this latitude."`
	Lng     float64 `help:"Show distances from this longitude."`
}

func (m *MeetupListCmd) Run(ctx *Context) error {
	db, client, err := open(ctx)
	if err != nil {
		return err
	}
	filter := buddypress.GroupFilter{
		Search:  m.Search,
		Page:    m.Page,
		PerPage: m.PerPage,
	}
	if m.Mine {
		session, err := store.NewSessions(db).Current()
		if err != nil {
			return err
		}
		if session == nil {
			return buddypress.ErrUnauthorized
		}
		filter.UserID = session.UserID
	}
	groups, err := client.ListGroups(context.Background(), filter)
	if err != nil {
		return err
	}
	for i := range groups {
		g := &groups[i]
		start, end := g.Window()
		date, clock := humanize.DateRange(start, end)
		fmt.Printf("%d  %s\n", g.ID, g.Name)
		fmt.Printf("    %s %s\n", date, clock)
		fmt.Printf("    %s\n", membership(g))
		if m.Lat != 0 || m.Lng != 0 {
			if lat, lng, ok := g.Coordinates(); ok {
				if meters, ok := geo.Distance(m.Lat, m.Lng, lat, lng); ok {
					fmt.Printf("    %.1f km away\n", meters/1000)
				}
			}
		}
	}
	return nil
}

func membership(g *buddypress.Group) string {
	var going string
	if g.MemberDetail.Limit > 0 {
		going = fmt.Sprintf("%d/%d going", g.MemberDetail.Count, g.MemberDetail.Limit)
	} else {
		going = fmt.Sprintf("%d going", g.MemberDetail.Count)
	}
	switch {
	case g.MemberDetail.IsMember:
		return going + ", you are in"
	case g.MemberDetail.IsPending:
		return going + ", request pending"
	case g.Full():
		return going + ", full"
	default:
		return going
	}
}

type MeetupCreateCmd struct {
	Name        string  `arg:"" help:"Meetup name."`
	Description string  `help:"What this meetup is about."`
	Private     bool    `help:"Require a membership request to join."`
	Start       string  `help:"Start time, e.g. \"2026-09-12 18:00\". Empty means anytime."`
	End         string  `help:"End time."`
	Lat         float64 `help:"Latitude of the spot."`
	Lng         float64 `help:"Longitude of the spot."`
	Limit       int     `help:"Member cap, 0 for uncapped."`
}

func (m *MeetupCreateCmd) Run(ctx *Context) error {
	_, client, err := open(ctx)
	if err != nil {
		return err
	}
	status := "public"
	if m.Private {
		status = "private"
	}
	group, err := client.CreateGroup(context.Background(), buddypress.NewGroup{
		Name:        m.Name,
		Description: m.Description,
		Status:      status,
		StartAt:     m.Start,
		EndAt:       m.End,
		Latitude:    m.Lat,
		Longitude:   m.Lng,
		Limit:       m.Limit,
	})
	if err != nil {
		return serverError(err)
	}
	fmt.Printf("created meetup %d: %s\n", group.ID, group.Name)
	return nil
}

type MeetupJoinCmd struct {
	ID int `arg:"" help:"Meetup id."`
}

func (m *MeetupJoinCmd) Run(ctx *Context) error {
	db, client, err := open(ctx)
	if err != nil {
		return err
	}
	userID, err := currentUser(db)
	if err != nil {
		return err
	}
	group, err := client.GetGroup(context.Background(), m.ID)
	if err != nil {
		return err
	}
	if group.Status == "private" && !group.MemberDetail.IsMember {
		return fmt.Errorf("meetup %d is private, use meetup request", m.ID)
	}
	if _, err := client.JoinGroup(context.Background(), m.ID, userID); err != nil {
		return serverError(err)
	}
	fmt.Printf("joined %s\n", group.Name)
	return nil
}

type MeetupLeaveCmd struct {
	ID int `arg:"" help:"Meetup id."`
}

func (m *MeetupLeaveCmd) Run(ctx *Context) error {
	db, client, err := open(ctx)
	if err != nil {
		return err
	}
	userID, err := currentUser(db)
	if err != nil {
		return err
	}
	if err := client.LeaveGroup(context.Background(), m.ID, userID); err != nil {
		return serverError(err)
	}
	fmt.Printf("left meetup %d\n", m.ID)
	return nil
}

type MeetupRequestCmd struct {
	ID int `arg:"" help:"Meetup id."`
}

func (m *MeetupRequestCmd) Run(ctx *Context) error {
	db, client, err := open(ctx)
	if err != nil {
		return err
	}
	userID, err := currentUser(db)
	if err != nil {
		return err
	}
	if err := client.RequestMembership(context.Background(), m.ID, userID); err != nil {
		return serverError(err)
	}
	fmt.Printf("membership requested for meetup %d\n", m.ID)
	return nil
}

func currentUser(db *gorm.DB) (int, error) {
	session, err := store.NewSessions(db).Current()
	if err != nil {
		return 0, err
	}
	if session == nil {
		return 0, buddypress.ErrUnauthorized
	}
	return session.UserID, nil
}

// serverError prefers the server's own message, e.g. "group is full".
func serverError(err error) error {
	if msg, ok := buddypress.ServerMessage(err); ok {
		return errors.New(msg)
	}
	return err
}
