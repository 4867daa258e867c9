package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/hashtagbbq/tableside/internal/catalog"
	"github.com/hashtagbbq/tableside/internal/config"
	"github.com/hashtagbbq/tableside/internal/domain"
	"github.com/hashtagbbq/tableside/internal/kv"
	"github.com/hashtagbbq/tableside/internal/port"
	"github.com/hashtagbbq/tableside/internal/repository"
	"github.com/hashtagbbq/tableside/internal/reservation"
	"github.com/hashtagbbq/tableside/internal/session"
)

const usage = `usage: tableside <command> [flags]

commands:
  start    select order type, outlet and mode
  menu     browse the menu
  cart     add | remove | set | list | clear
  slots    print the bookable time grid
  reserve  book a table
`

type app struct {
	logger   *slog.Logger
	menu     *catalog.Catalog
	carts    port.CartStore
	bookings *reservation.Service
	sessions *session.Manager
	outletID string
}

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	store, err := openStore(cfg)
	if err != nil {
		logger.Error("open store", "driver", cfg.StoreDriver, "err", err)
		os.Exit(1)
	}
	if closer, ok := store.(io.Closer); ok {
		defer closer.Close()
	}

	a := &app{
		logger:   logger,
		menu:     catalog.Default(),
		carts:    repository.NewCart(store),
		bookings: reservation.NewService(repository.NewReservations(store)),
		sessions: session.NewManager(store),
		outletID: cfg.OutletID,
	}

	ctx := context.Background()

	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		logger.Error("command failed", "command", os.Args[1], "err", err)
		os.Exit(1)
	}
}

func openStore(cfg config.Config) (port.KV, error) {
	switch cfg.StoreDriver {
	case "file":
		return kv.OpenFile(cfg.StorePath)
	case "bolt":
		return kv.OpenBolt(cfg.StorePath)
	case "memory":
		return kv.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "start":
		return a.start(ctx, args)
	case "menu":
		return a.browse(ctx, args)
	case "cart":
		return a.cart(ctx, args)
	case "slots":
		for _, slot := range reservation.Slots() {
			fmt.Println(slot)
		}
		return nil
	case "reserve":
		return a.reserve(ctx, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) start(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("start", flag.ExitOnError)
	orderType := fs.String("type", "dine-in", "order type: dine-in, takeaway or delivery")
	outletID := fs.String("outlet", a.outletID, "outlet id")
	mode := fs.String("mode", "now", "order mode: now or later")
	if err := fs.Parse(args); err != nil {
		return err
	}

	outlet, ok := a.menu.Outlet(*outletID)
	if !ok {
		return fmt.Errorf("unknown outlet %q", *outletID)
	}

	flow := session.Flow{OrderType: *orderType, OutletID: *outletID, Mode: *mode}
	if err := a.sessions.SetFlow(ctx, flow); err != nil {
		return fmt.Errorf("sessions.SetFlow: %w", err)
	}

	id, err := a.sessions.ID(ctx)
	if err != nil {
		return fmt.Errorf("sessions.ID: %w", err)
	}

	a.logger.Info("order flow selected", "session", id, "type", *orderType, "mode", *mode)
	fmt.Printf("%s - %s (%s)\n", outlet.Name, *orderType, *mode)
	return nil
}

func (a *app) browse(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("menu", flag.ExitOnError)
	categoryID := fs.String("category", "", "category id; empty lists categories")
	veg := fs.String("veg", "all", "all, veg or non-veg")
	search := fs.String("search", "", "search query")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *categoryID == "" {
		for _, category := range a.menu.Categories() {
			fmt.Printf("%s  %s (%s)\n", category.Icon, category.Name, category.ID)
		}
		return nil
	}

	filter := catalog.Filter{Veg: catalog.VegFilter(*veg), Query: *search}
	for _, item := range a.menu.Items(*categoryID, filter) {
		marker := " "
		if item.Bestseller {
			marker = "*"
		}
		fmt.Printf("%s %-6s %-25s %10v  %s\n", marker, item.ID, item.Name, item.Price, item.Description)
	}
	return nil
}

func (a *app) cart(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: cart add|remove|set|list|clear")
	}
	action, args := args[0], args[1:]

	fs := flag.NewFlagSet("cart "+action, flag.ExitOnError)
	itemID := fs.String("item", "", "menu item id")
	customization := fs.String("customization", "", "customization note, e.g. spice level")
	quantity := fs.Int("qty", 1, "quantity")

	switch action {
	case "add":
		if err := fs.Parse(args); err != nil {
			return err
		}
		item, ok := a.menu.Item(*itemID)
		if !ok {
			return fmt.Errorf("unknown menu item %q", *itemID)
		}
		line := domain.CartLineItem{
			ItemID:        item.ID,
			Customization: *customization,
			UnitPrice:     item.Price,
		}
		cart, err := a.carts.Add(ctx, line, *quantity)
		if err != nil {
			return fmt.Errorf("carts.Add: %w", err)
		}
		return a.printCart(cart)

	case "remove":
		if err := fs.Parse(args); err != nil {
			return err
		}
		cart, err := a.carts.Remove(ctx, *itemID, *customization)
		if err != nil {
			return fmt.Errorf("carts.Remove: %w", err)
		}
		return a.printCart(cart)

	case "set":
		if err := fs.Parse(args); err != nil {
			return err
		}
		cart, err := a.carts.SetQuantity(ctx, *itemID, *customization, *quantity)
		if err != nil {
			return fmt.Errorf("carts.SetQuantity: %w", err)
		}
		return a.printCart(cart)

	case "list":
		cart, err := a.carts.Get(ctx)
		if err != nil {
			return fmt.Errorf("carts.Get: %w", err)
		}
		return a.printCart(cart)

	case "clear":
		if err := a.carts.Clear(ctx); err != nil {
			return fmt.Errorf("carts.Clear: %w", err)
		}
		fmt.Println("cart cleared")
		return nil

	default:
		return fmt.Errorf("unknown cart action %q", action)
	}
}

func (a *app) printCart(cart domain.Cart) error {
	if len(cart.Items) == 0 {
		fmt.Println("cart is empty")
		return nil
	}

	for _, line := range cart.Items {
		name := line.ItemID
		if item, ok := a.menu.Item(line.ItemID); ok {
			name = item.Name
		}
		if line.Customization != "" {
			name = fmt.Sprintf("%s (%s)", name, line.Customization)
		}
		fmt.Printf("%dx %-35s %v\n", line.Quantity, name, line.Subtotal())
	}
	fmt.Printf("total: %v, items: %d\n", cart.Total(), cart.Count())
	return nil
}

func (a *app) reserve(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reserve", flag.ExitOnError)
	name := fs.String("name", "", "customer name")
	phone := fs.String("phone", "", "10-digit phone number")
	date := fs.String("date", "", "date, YYYY-MM-DD")
	slot := fs.String("time", "", "time slot, HH:MM (see slots command)")
	guests := fs.String("guests", "2", `number of guests, "10+" for larger parties`)
	if err := fs.Parse(args); err != nil {
		return err
	}

	// The selected outlet wins over the configured default.
	outletID := a.outletID
	if flow, err := a.sessions.Flow(ctx); err == nil && flow.OutletID != "" {
		outletID = flow.OutletID
	}
	outlet, ok := a.menu.Outlet(outletID)
	if !ok {
		return fmt.Errorf("unknown outlet %q", outletID)
	}

	req := domain.ReservationRequest{
		CustomerName:  *name,
		CustomerPhone: *phone,
		Date:          *date,
		Time:          *slot,
		Guests:        *guests,
	}

	booked, fieldErrors, err := a.bookings.Reserve(ctx, outlet, req)
	if err != nil {
		return fmt.Errorf("bookings.Reserve: %w", err)
	}
	if len(fieldErrors) > 0 {
		for field, message := range fieldErrors {
			fmt.Fprintf(os.Stderr, "%s: %s\n", field, message)
		}
		return fmt.Errorf("reservation form has %d invalid field(s)", len(fieldErrors))
	}

	a.logger.Info("table reserved", "outlet", outlet.ID, "code", booked.ConfirmationCode)
	fmt.Printf("Table reserved at %s on %s %s.\nConfirmation code: %s\n",
		booked.OutletName, booked.Date, booked.Time, booked.ConfirmationCode)
	return nil
}
