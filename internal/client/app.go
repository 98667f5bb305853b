package client

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-feed/internal/adapter"
	"github.com/MKhiriev/go-feed/internal/logger"
	"github.com/MKhiriev/go-feed/models"
)

// Usage is printed for "help" and on usage errors.
const Usage = `usage: go-feed-client [-s address] [-timeout d] [-token-file path] <command> [args]

commands:
  signup <username> <password>
  login <username> <password>
  logout
  me
  post <content...>
  timeline [-limit n] [-cursor c]
  posts <userID> [-limit n] [-cursor c]
  health
`

type App struct {
	adapter adapter.ServerAdapter
	tokens  TokenStore
	out     io.Writer

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, tokens TokenStore, out io.Writer, logger *logger.Logger) *App {
	return &App{
		adapter: serverAdapter,
		tokens:  tokens,
		out:     out,
		logger:  logger,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	cmd, rest := args[0], args[1:]
	a.logger.Debug().Str("command", cmd).Msg("running command")

	switch cmd {
	case "signup":
		return a.signup(ctx, rest)
	case "login":
		return a.login(ctx, rest)
	case "logout":
		return a.tokens.Clear()
	case "me":
		return a.me(ctx)
	case "post":
		return a.post(ctx, rest)
	case "timeline":
		return a.timeline(ctx, rest)
	case "posts":
		return a.userPosts(ctx, rest)
	case "health":
		return a.health(ctx)
	case "help", "-h", "--help":
		_, err := io.WriteString(a.out, Usage)
		return err
	default:
		return fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
	}
}

func credentials(args []string) (models.Credentials, error) {
	if len(args) != 2 {
		return models.Credentials{}, fmt.Errorf("%w: expected <username> <password>", ErrUsage)
	}
	return models.Credentials{Username: args[0], Password: args[1]}, nil
}

func (a *App) signup(ctx context.Context, args []string) error {
	creds, err := credentials(args)
	if err != nil {
		return err
	}

	created, err := a.adapter.Signup(ctx, creds)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "created user %s (id %d)\n", created.Username, created.ID)
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	creds, err := credentials(args)
	if err != nil {
		return err
	}

	login, err := a.adapter.Login(ctx, creds)
	if err != nil {
		return err
	}
	if err = a.tokens.Save(login.Token); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "logged in as %s, session expires at %s\n", creds.Username, login.ExpiresAt.Local().Format(time.RFC3339))
	return nil
}

// authenticate loads the stored token into the adapter.
func (a *App) authenticate() error {
	token, err := a.tokens.Load()
	if err != nil {
		return err
	}
	if token == "" {
		return ErrNotLoggedIn
	}
	a.adapter.SetToken(token)
	return nil
}

func (a *App) me(ctx context.Context) error {
	if err := a.authenticate(); err != nil {
		return err
	}

	identity, err := a.adapter.Me(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s (id %d)\n", identity.Subject, identity.UserID)
	return nil
}

func (a *App) post(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: expected <content>", ErrUsage)
	}
	if err := a.authenticate(); err != nil {
		return err
	}

	post, err := a.adapter.CreatePost(ctx, models.CreatePostRequest{Content: strings.Join(args, " ")})
	if err != nil {
		return err
	}

	a.printPost(post)
	return nil
}

func pageFlags(name string, args []string) (models.TimelineRequest, []string, error) {
	var req models.TimelineRequest

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.IntVar(&req.Limit, "limit", 0, "page size")
	fs.StringVar(&req.Cursor, "cursor", "", "cursor of the next page")
	if err := fs.Parse(args); err != nil {
		return req, nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	return req, fs.Args(), nil
}

func (a *App) timeline(ctx context.Context, args []string) error {
	req, _, err := pageFlags("timeline", args)
	if err != nil {
		return err
	}
	if err = a.authenticate(); err != nil {
		return err
	}

	page, err := a.adapter.Timeline(ctx, req)
	if err != nil {
		return err
	}

	a.printPage(page)
	return nil
}

func (a *App) userPosts(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: expected <userID>", ErrUsage)
	}
	userID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || userID <= 0 {
		return fmt.Errorf("%w: invalid user id %q", ErrUsage, args[0])
	}

	req, _, err := pageFlags("posts", args[1:])
	if err != nil {
		return err
	}
	if err = a.authenticate(); err != nil {
		return err
	}

	page, err := a.adapter.UserPosts(ctx, userID, req)
	if err != nil {
		return err
	}

	a.printPage(page)
	return nil
}

func (a *App) health(ctx context.Context) error {
	health, err := a.adapter.Health(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s %s\n", health.Status, health.Version)
	return nil
}

func (a *App) printPost(p models.PostResponse) {
	fmt.Fprintf(a.out, "#%d @%s %s\n  %s\n", p.ID, p.Username, p.CreatedAt.Local().Format(time.RFC3339), p.Content)
}

func (a *App) printPage(page models.TimelineResponse) {
	if len(page.Items) == 0 {
		fmt.Fprintln(a.out, "no posts")
	}
	for _, p := range page.Items {
		a.printPost(p)
	}
	if page.NextCursor != nil {
		fmt.Fprintf(a.out, "next: -cursor %s\n", *page.NextCursor)
	}
}
