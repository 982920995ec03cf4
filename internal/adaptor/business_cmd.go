package adaptor

import (
	"context"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"locker-rental/internal/data/entity"
	"locker-rental/internal/dto/request"
	"locker-rental/internal/geo"
	"locker-rental/internal/usecase"

	"go.uber.org/zap"
)

type BusinessHandler struct {
	service  usecase.BusinessService
	viewport *geo.Viewport
	out      io.Writer
	log      *zap.Logger
}

func NewBusinessHandler(service usecase.BusinessService, out io.Writer, log *zap.Logger) *BusinessHandler {
	return &BusinessHandler{
		service:  service,
		viewport: geo.NewViewport(),
		out:      out,
		log:      log,
	}
}

// Search handles `search --zip 30308` or `search --name "Midtown"`.
func (h *BusinessHandler) Search(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	zip := fs.String("zip", "", "5-digit ZIP code")
	name := fs.String("name", "", "business name (partial match)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	results, err := h.service.Search(ctx, &request.SearchBusinessRequest{
		ZipCode: *zip,
		Name:    *name,
	})
	if err != nil {
		return err
	}

	h.printBusinesses(results)
	return nil
}

// Nearby handles `nearby [--lat ... --lon ...]`. Without coordinates the
// location provider resolves the position.
func (h *BusinessHandler) Nearby(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("nearby", flag.ContinueOnError)
	lat := fs.Float64("lat", 0, "latitude override")
	lon := fs.Float64("lon", 0, "longitude override")
	if err := fs.Parse(args); err != nil {
		return err
	}

	loc := locationFromFlags(fs, *lat, *lon)
	results, resolved, err := h.service.Nearby(ctx, loc)
	if err != nil {
		return err
	}

	if resolved != nil {
		fmt.Fprintf(h.out, "Near %.4f, %.4f:\n", resolved.Latitude, resolved.Longitude)
	}
	h.printBusinesses(results)
	return nil
}

// Map handles `map [--lat ... --lon ...]`: it runs a nearby search and
// prints the framed viewport over the results.
func (h *BusinessHandler) Map(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("map", flag.ContinueOnError)
	lat := fs.Float64("lat", 0, "latitude override")
	lon := fs.Float64("lon", 0, "longitude override")
	if err := fs.Parse(args); err != nil {
		return err
	}

	loc := locationFromFlags(fs, *lat, *lon)
	results, resolved, err := h.service.Nearby(ctx, loc)
	if err != nil {
		// The framing rules still produce a region without a location,
		// so degrade to whatever results the containers already hold.
		results = h.service.Results()
		resolved = nil
		if len(results) == 0 {
			h.log.Warn("Map falling back to default region", zap.Error(err))
		}
	}

	region := h.viewport.Update(resolved, results)
	fmt.Fprintf(h.out, "Viewport center: %.4f, %.4f (span %.4f x %.4f)\n",
		region.CenterLat, region.CenterLon, region.LatDelta, region.LonDelta)

	for _, b := range results {
		marker := fmt.Sprintf("%.4f, %.4f", b.Location.Latitude(), b.Location.Longitude())
		if b.DistanceKm != nil {
			fmt.Fprintf(h.out, "  [%s] %s (%.2f km)\n", marker, b.Name, *b.DistanceKm)
		} else {
			fmt.Fprintf(h.out, "  [%s] %s\n", marker, b.Name)
		}
	}
	return nil
}

// Detail handles `business <id>`.
func (h *BusinessHandler) Detail(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: business <id>")
	}

	b, err := h.service.Detail(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(h.out, "%s\n", b.Name)
	fmt.Fprintf(h.out, "  %s, %s, %s %s\n", b.Address.Street, b.Address.City, b.Address.State, b.Address.ZipCode)
	fmt.Fprintf(h.out, "  Lockers:  %d/%d available\n", b.AvailableLockers, b.TotalLockers)
	fmt.Fprintf(h.out, "  Price:    $%.2f/hour\n", b.PricePerHour)
	fmt.Fprintf(h.out, "  Rating:   %.1f\n", b.Rating)
	return nil
}

func (h *BusinessHandler) printBusinesses(list []entity.Business) {
	if len(list) == 0 {
		fmt.Fprintln(h.out, "No businesses found")
		return
	}

	w := tabwriter.NewWriter(h.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tZIP\tAVAILABLE\t$/HR\tDISTANCE")
	for _, b := range list {
		distance := "-"
		if b.DistanceKm != nil {
			distance = fmt.Sprintf("%.2f km", *b.DistanceKm)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d/%d\t%.2f\t%s\n",
			b.ID, b.Name, b.Address.ZipCode, b.AvailableLockers, b.TotalLockers, b.PricePerHour, distance)
	}
	w.Flush()
}

// locationFromFlags returns a Location only when both coordinate flags
// were set explicitly; a zero default is a real place (null island), so
// presence is what matters, not value.
func locationFromFlags(fs *flag.FlagSet, lat, lon float64) *entity.Location {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["lat"] || !set["lon"] {
		return nil
	}
	return &entity.Location{Latitude: lat, Longitude: lon, Timestamp: time.Now()}
}
