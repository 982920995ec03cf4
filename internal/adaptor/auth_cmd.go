package adaptor

import (
	"context"
	"flag"
	"fmt"
	"io"

	"locker-rental/internal/dto/request"
	"locker-rental/internal/usecase"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	out     io.Writer
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, out io.Writer, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		out:     out,
		log:     log,
	}
}

// Register handles `register --name ... --email ... --password ...`.
func (h *AuthHandler) Register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password (min 8 characters)")
	phone := fs.String("phone", "", "phone number (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := request.RegisterRequest{
		Name:     *name,
		Email:    *email,
		Password: *password,
	}
	if *phone != "" {
		req.Phone = phone
	}

	user, err := h.service.Register(ctx, &req)
	if err != nil {
		return err
	}

	fmt.Fprintf(h.out, "Registered and signed in as %s <%s>\n", user.Name, user.Email)
	return nil
}

// Login handles `login --email ... --password ...`.
func (h *AuthHandler) Login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := h.service.Login(ctx, &request.LoginRequest{
		Email:    *email,
		Password: *password,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(h.out, "Signed in as %s <%s>\n", user.Name, user.Email)
	return nil
}

func (h *AuthHandler) Logout(ctx context.Context, args []string) error {
	if err := h.service.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(h.out, "Signed out")
	return nil
}

func (h *AuthHandler) Profile(ctx context.Context, args []string) error {
	user, err := h.service.Profile(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(h.out, "Name:  %s\n", user.Name)
	fmt.Fprintf(h.out, "Email: %s\n", user.Email)
	if user.Phone != nil {
		fmt.Fprintf(h.out, "Phone: %s\n", *user.Phone)
	}
	fmt.Fprintf(h.out, "Role:  %s\n", user.Role)
	return nil
}

// UpdateProfile handles `profile-update --name ... --phone ...`.
func (h *AuthHandler) UpdateProfile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("profile-update", flag.ContinueOnError)
	name := fs.String("name", "", "new full name")
	phone := fs.String("phone", "", "new phone number")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" && *phone == "" {
		return fmt.Errorf("nothing to update: pass --name and/or --phone")
	}

	req := request.UpdateProfileRequest{Name: *name}
	if *phone != "" {
		req.Phone = phone
	}

	user, err := h.service.UpdateProfile(ctx, &req)
	if err != nil {
		return err
	}

	fmt.Fprintf(h.out, "Profile updated: %s <%s>\n", user.Name, user.Email)
	return nil
}
