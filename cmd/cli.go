package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"locker-rental/internal/mockapi"
	"locker-rental/internal/wire"
	"locker-rental/pkg/utils"

	"go.uber.org/zap"
)

// Run dispatches a subcommand against the wired app. args is os.Args
// without the program name.
func Run(ctx context.Context, app *wire.App, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing command\n\n%s", usage)
	}
	command, rest := args[0], args[1:]

	h := app.Handler
	switch command {
	case "register":
		return h.Auth.Register(ctx, rest)
	case "login":
		return h.Auth.Login(ctx, rest)
	case "logout":
		return h.Auth.Logout(ctx, rest)
	case "profile":
		return h.Auth.Profile(ctx, rest)
	case "profile-update":
		return h.Auth.UpdateProfile(ctx, rest)
	case "search":
		return h.Business.Search(ctx, rest)
	case "nearby":
		return h.Business.Nearby(ctx, rest)
	case "map":
		return h.Business.Map(ctx, rest)
	case "business":
		return h.Business.Detail(ctx, rest)
	case "book":
		return h.Booking.Create(ctx, rest)
	case "bookings":
		return h.Booking.List(ctx, rest)
	case "booking":
		return h.Booking.Detail(ctx, rest)
	case "cancel":
		return h.Booking.Cancel(ctx, rest)
	case "checkin":
		return h.Booking.CheckIn(ctx, rest)
	case "checkout":
		return h.Booking.CheckOut(ctx, rest)
	case "help":
		fmt.Println(usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q\n\n%s", command, usage)
	}
}

// Serve starts the bundled development server.
func Serve(config *utils.Config, logger *zap.Logger) {
	server := mockapi.NewServer(config, logger)
	addr := fmt.Sprintf(":%s", config.App.ServePort)
	fmt.Printf("Development server running on http://localhost%s\n", addr)

	if err := http.ListenAndServe(addr, server); err != nil {
		log.Fatal("Server error:", err)
	}
}

const usage = `Usage: locker-rental <command> [flags]

Account:
  register --name N --email E --password P [--phone P]
  login --email E --password P
  logout
  profile
  profile-update [--name N] [--phone P]

Find lockers:
  search --zip 30308 | --name "Midtown"
  nearby [--lat L --lon L]
  map [--lat L --lon L]
  business <id>

Bookings:
  book --business <id> --start <RFC3339> --end <RFC3339>
  bookings [--status S] [--page N] [--limit N]
  booking <id>
  cancel <id> [--reason R]
  checkin <id>
  checkout <id>

Development:
  serve    run the bundled in-memory API server`
