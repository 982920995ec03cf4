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
	"locker-rental/internal/usecase"

	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	out     io.Writer
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, out io.Writer, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		out:     out,
		log:     log,
	}
}

// Create handles `book --business <id> --start <RFC3339> --end <RFC3339>`.
func (h *BookingHandler) Create(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("book", flag.ContinueOnError)
	businessID := fs.String("business", "", "business id")
	start := fs.String("start", "", "start time (RFC3339, e.g. 2026-09-01T10:00:00Z)")
	end := fs.String("end", "", "end time (RFC3339)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	startTime, err := time.Parse(time.RFC3339, *start)
	if err != nil {
		return fmt.Errorf("invalid --start: %w", err)
	}
	endTime, err := time.Parse(time.RFC3339, *end)
	if err != nil {
		return fmt.Errorf("invalid --end: %w", err)
	}

	booking, err := h.service.Create(ctx, &request.CreateBookingRequest{
		BusinessID: *businessID,
		StartTime:  startTime,
		EndTime:    endTime,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(h.out, "Booked locker #%d at %s\n", booking.LockerNumber, booking.BusinessName)
	fmt.Fprintf(h.out, "  %s to %s\n", booking.StartTime.Format(time.RFC3339), booking.EndTime.Format(time.RFC3339))
	fmt.Fprintf(h.out, "  Total: $%.2f (%s)\n", booking.TotalAmount, booking.Status)
	return nil
}

// List handles `bookings [--status active]`.
func (h *BookingHandler) List(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("bookings", flag.ContinueOnError)
	status := fs.String("status", "", "filter by status")
	page := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", 20, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := &request.MyBookingsRequest{Status: *status}
	req.Page = *page
	req.PerPage = *limit

	bookings, err := h.service.List(ctx, req)
	if err != nil {
		return err
	}

	if len(bookings) == 0 {
		fmt.Fprintln(h.out, "No bookings")
		return nil
	}

	w := tabwriter.NewWriter(h.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tBUSINESS\tLOCKER\tSTART\tSTATUS")
	for _, b := range bookings {
		fmt.Fprintf(w, "%s\t%s\t#%d\t%s\t%s\n",
			b.ID, b.BusinessName, b.LockerNumber, b.StartTime.Format("2006-01-02 15:04"), b.Status)
	}
	w.Flush()
	return nil
}

// Detail handles `booking <id>`.
func (h *BookingHandler) Detail(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: booking <id>")
	}

	b, err := h.service.Detail(ctx, args[0])
	if err != nil {
		return err
	}

	h.printBooking(b)
	return nil
}

// Cancel handles `cancel <id> [--reason ...]`.
func (h *BookingHandler) Cancel(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: cancel <id> [--reason ...]")
	}
	id := args[0]

	fs := flag.NewFlagSet("cancel", flag.ContinueOnError)
	reason := fs.String("reason", "", "cancellation reason")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	booking, err := h.service.Cancel(ctx, id, *reason)
	if err != nil {
		return err
	}

	fmt.Fprintf(h.out, "Booking %s cancelled\n", booking.ID)
	return nil
}

// CheckIn handles `checkin <id>`.
func (h *BookingHandler) CheckIn(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: checkin <id>")
	}

	booking, err := h.service.CheckIn(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(h.out, "Checked in to locker #%d\n", booking.LockerNumber)
	if booking.AccessCode != nil {
		fmt.Fprintf(h.out, "Access code: %s\n", *booking.AccessCode)
	}
	return nil
}

// CheckOut handles `checkout <id>`.
func (h *BookingHandler) CheckOut(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: checkout <id>")
	}

	booking, err := h.service.CheckOut(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(h.out, "Checked out of locker #%d; final amount $%.2f\n",
		booking.LockerNumber, booking.TotalAmount)
	return nil
}

func (h *BookingHandler) printBooking(b *entity.Booking) {
	fmt.Fprintf(h.out, "Booking %s (%s)\n", b.ID, b.Status)
	fmt.Fprintf(h.out, "  Business: %s\n", b.BusinessName)
	fmt.Fprintf(h.out, "  Locker:   #%d\n", b.LockerNumber)
	fmt.Fprintf(h.out, "  Window:   %s to %s\n", b.StartTime.Format(time.RFC3339), b.EndTime.Format(time.RFC3339))
	fmt.Fprintf(h.out, "  Total:    $%.2f\n", b.TotalAmount)
	if b.AccessCode != nil {
		fmt.Fprintf(h.out, "  Access:   %s\n", *b.AccessCode)
	}
	if b.CancellationReason != nil {
		fmt.Fprintf(h.out, "  Reason:   %s\n", *b.CancellationReason)
	}
}
