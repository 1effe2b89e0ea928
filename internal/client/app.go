package client

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-hr-portal/internal/logger"
	"github.com/MKhiriev/go-hr-portal/internal/service"
	"github.com/MKhiriev/go-hr-portal/internal/session"
	"github.com/MKhiriev/go-hr-portal/models"
)

const passwordEnv = "HR_PASSWORD"

const usage = `usage: hr-client [config flags] <command> [args]

commands:
  login -email <email> [-password <password>] [-force]
  logout
  me
  status
  employees list [-page N] [-page-size N] [-search S] [-department D] [-status S] [-sort-by F] [-sort-order asc|desc]
  employees get <id>
  employees create -first-name F -last-name L -email E [-phone P] [-department D] [-position P] [-hire-date YYYY-MM-DD] [-salary N]
  employees update <id> [same flags as create] [-status active|inactive]
  employees delete <id>
  employees stats
  employees export [list filters]
  employees avatar <id> <image file>

The password may also be given in the HR_PASSWORD environment variable.
`

type App struct {
	services  *service.ClientServices
	navigator *Navigator

	stdout io.Writer
	stderr io.Writer

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, navigator *Navigator, stdout, stderr io.Writer, logger *logger.Logger) *App {
	return &App{
		services:  services,
		navigator: navigator,
		stdout:    stdout,
		stderr:    stderr,
		logger:    logger,
	}
}

// Run executes one command. The command line is recorded as the return
// target of a forced login.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.stderr, usage)
		return ErrUsage
	}

	if err := a.services.AuthService.Restore(ctx); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	a.navigator.Reset()
	ctx = session.WithReturnTo(ctx, strings.Join(args, " "))

	err := a.dispatch(ctx, args[0], args[1:])

	switch args[0] {
	case "login", "logout", "status":
		// these end on the login screen by design
		return err
	}
	if _, redirected := a.navigator.RedirectedToLogin(); redirected && !errors.Is(err, ErrRedirectedToLogin) {
		if err == nil {
			return ErrRedirectedToLogin
		}
		return fmt.Errorf("%w: %w", ErrRedirectedToLogin, err)
	}
	return err
}

func (a *App) dispatch(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.login(ctx, args)
	case "logout":
		return a.logout(ctx)
	case "me":
		return a.me(ctx)
	case "status":
		return a.status(ctx)
	case "employees":
		return a.employees(ctx, args)
	case "help", "-h", "-help", "--help":
		fmt.Fprint(a.stdout, usage)
		return nil
	default:
		fmt.Fprint(a.stderr, usage)
		return fmt.Errorf("%w: unknown command %q", ErrUsage, command)
	}
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := a.newFlagSet("login")
	email := fs.String("email", "", "account e-mail")
	password := fs.String("password", os.Getenv(passwordEnv), "account password")
	force := fs.Bool("force", false, "sign in even if a user is already signed in")
	if err := a.parse(fs, args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return fmt.Errorf("%w: login needs -email and -password", ErrUsage)
	}

	if !*force && !a.services.GuestGuard.CanActivate(ctx, "login") {
		user, _ := a.services.AuthService.CurrentUser()
		return a.printJSON(models.AuthData{User: user})
	}

	user, err := a.services.AuthService.Login(ctx, models.Credentials{Email: *email, Password: *password})
	if err != nil {
		return err
	}
	return a.printJSON(models.AuthData{User: user})
}

// logout reports the server error but the local session is gone either way.
func (a *App) logout(ctx context.Context) error {
	if err := a.services.AuthService.Logout(ctx); err != nil {
		return err
	}
	return a.printJSON(map[string]bool{"signedOut": true})
}

func (a *App) me(ctx context.Context) error {
	if err := a.requireAuth(ctx, "me"); err != nil {
		return err
	}

	user, err := a.services.AuthService.GetCurrentUser(ctx)
	if err != nil {
		return err
	}
	return a.printJSON(models.AuthData{User: user})
}

type statusOutput struct {
	Authenticated bool         `json:"authenticated"`
	User          *models.User `json:"user,omitempty"`
}

func (a *App) status(ctx context.Context) error {
	out := statusOutput{Authenticated: a.services.AuthService.CheckAuthStatus(ctx)}
	if user, ok := a.services.AuthService.CurrentUser(); ok && out.Authenticated {
		out.User = &user
	}
	return a.printJSON(out)
}

// requireAuth runs the auth guard for target. A rejected command has
// already been reported by the navigator.
func (a *App) requireAuth(ctx context.Context, target string) error {
	if !a.services.AuthGuard.CanActivate(ctx, target) {
		return ErrRedirectedToLogin
	}
	return nil
}

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

func (a *App) parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	return nil
}

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
