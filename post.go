package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/nomavan/nomavan/buddypress"
)

type PostCmd struct {
	Expense      PostExpenseCmd      `cmd:"" help:"Log an expense."`
	Connectivity PostConnectivityCmd `cmd:"" help:"Report cell or wifi coverage."`
	Story        PostStoryCmd        `cmd:"" help:"Publish a travel story."`
	Spothunt     PostSpotHuntCmd     `cmd:"" help:"Pin a spot hunt."`
	Routepoint   PostRoutePointCmd   `cmd:"" help:"Log a route point."`
}

type PostExpenseCmd struct {
	Title  string   `arg:"" help:"Expense title."`
	Vendor string   `help:"Where the money went."`
	Item   []string `help:"Line item as name:price or name:price:qty. Repeatable." required:""`
	Lat    float64  `help:"Latitude."`
	Lng    float64  `help:"Longitude."`
	Spent  string   `help:"When the money was spent, e.g. \"2026-09-01 14:30\"."`
}

func (p *PostExpenseCmd) Run(ctx *Context) error {
	items, err := parseItems(p.Item)
	if err != nil {
		return err
	}
	_, client, err := open(ctx)
	if err != nil {
		return err
	}
	created, err := client.CreateExpense(context.Background(), buddypress.NewExpense{
		Title:     p.Title,
		Vendor:    p.Vendor,
		Items:     items,
		Latitude:  p.Lat,
		Longitude: p.Lng,
		SpentAt:   p.Spent,
	})
	if err != nil {
		return serverError(err)
	}
	fmt.Printf("logged expense %d, total %.2f\n", created.ID, buddypress.ExpenseTotal(items))
	return nil
}

// parseItems turns name:price[:qty] into expense items. Quantity
// defaults to 1.
func parseItems(raw []string) ([]buddypress.ExpenseItem, error) {
	items := make([]buddypress.ExpenseItem, 0, len(raw))
	for _, s := range raw {
		parts := strings.Split(s, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, fmt.Errorf("bad item %q, want name:price or name:price:qty", s)
		}
		price, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("bad price in item %q: %w", s, err)
		}
		quantity := 1
		if len(parts) == 3 {
			quantity, err = strconv.Atoi(parts[2])
			if err != nil {
				return nil, fmt.Errorf("bad quantity in item %q: %w", s, err)
			}
		}
		items = append(items, buddypress.ExpenseItem{
			Name:     parts[0],
			Price:    price,
			Quantity: quantity,
		})
	}
	return items, nil
}

type PostConnectivityCmd struct {
	Title    string  `arg:"" help:"Spot name."`
	Network  string  `help:"Carrier or network name." required:""`
	Bars     int     `help:"Signal level, 0 to 4." required:""`
	Download float64 `help:"Measured download speed in Mbps."`
	Upload   float64 `help:"Measured upload speed in Mbps."`
	Lat      float64 `help:"Latitude." required:""`
	Lng      float64 `help:"Longitude." required:""`
}

func (p *PostConnectivityCmd) Run(ctx *Context) error {
	if p.Bars < 0 || p.Bars > 4 {
		return fmt.Errorf("bars must be 0 to 4, got %d", p.Bars)
	}
	_, client, err := open(ctx)
	if err != nil {
		return err
	}
	created, err := client.CreateConnectivityReport(context.Background(), buddypress.NewConnectivity{
		Title:       p.Title,
		Network:     p.Network,
		SignalLevel: p.Bars,
		Download:    p.Download,
		Upload:      p.Upload,
		Latitude:    p.Lat,
		Longitude:   p.Lng,
	})
	if err != nil {
		return serverError(err)
	}
	fmt.Printf("reported connectivity %d\n", created.ID)
	return nil
}

type PostStoryCmd struct {
	Title   string   `arg:"" help:"Story title."`
	Content string   `help:"Story text." required:""`
	Photo   []string `help:"Photo URL. Repeatable."`
}

func (p *PostStoryCmd) Run(ctx *Context) error {
	_, client, err := open(ctx)
	if err != nil {
		return err
	}
	created, err := client.CreateStory(context.Background(), buddypress.NewStory{
		Title:   p.Title,
		Content: p.Content,
		Photos:  p.Photo,
	})
	if err != nil {
		return serverError(err)
	}
	fmt.Printf("published story %d: %s\n", created.ID, created.Link)
	return nil
}

type PostSpotHuntCmd struct {
	Title string   `arg:"" help:"Spot name."`
	Clue  string   `help:"A hint for finding the spot."`
	Photo []string `help:"Photo URL. Repeatable."`
	Lat   float64  `help:"Latitude." required:""`
	Lng   float64  `help:"Longitude." required:""`
}

func (p *PostSpotHuntCmd) Run(ctx *Context) error {
	_, client, err := open(ctx)
	if err != nil {
		return err
	}
	created, err := client.CreateSpotHunt(context.Background(), buddypress.NewSpotHunt{
		Title:     p.Title,
		Clue:      p.Clue,
		Photos:    p.Photo,
		Latitude:  p.Lat,
		Longitude: p.Lng,
	})
	if err != nil {
		return serverError(err)
	}
	fmt.Printf("pinned spot hunt %d\n", created.ID)
	return nil
}

type PostRoutePointCmd struct {
	Title    string  `arg:"" help:"Stop name."`
	Lat      float64 `help:"Latitude." required:""`
	Lng      float64 `help:"Longitude." required:""`
	Arrived  string  `help:"Arrival time; empty means still en route."`
	Previous int     `help:"Id of the previous stop; 0 starts a new trip."`
}

func (p *PostRoutePointCmd) Run(ctx *Context) error {
	_, client, err := open(ctx)
	if err != nil {
		return err
	}
	created, err := client.CreateRoutePoint(context.Background(), buddypress.NewRoutePoint{
		Title:                p.Title,
		Latitude:             p.Lat,
		Longitude:            p.Lng,
		ArrivedAt:            p.Arrived,
		PreviousRoutePointID: p.Previous,
	})
	if err != nil {
		return serverError(err)
	}
	fmt.Printf("logged route point %d\n", created.ID)
	return nil
}
