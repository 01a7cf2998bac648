package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/nkiryanov/cookbook/internal/api"
	"github.com/nkiryanov/cookbook/internal/apperrors"
	"github.com/nkiryanov/cookbook/internal/models"
	"github.com/nkiryanov/cookbook/internal/session"
	"github.com/nkiryanov/cookbook/internal/table"
)

var errUsage = errors.New("unknown command")

func usage() {
	fmt.Fprintf(os.Stderr, `cookbook CLI

Usage:
  cookbook [flags] <command> [args]

Commands:
  login [callback-url]     print the hosted login URL, or finish login
                           with the redirect URL (use - to read stdin)
  logout
  whoami

  recipes  list|get|rm|create|update
  lists    list|get|rm
  tokens   list|get|rm
  shares   list|get|rm
  audits   list|get
  settings get|update

List flags: --limit, --status, --sort, --all
Create/update read a JSON file argument (use - for stdin).
`)
}

// Run dispatches one subcommand. Anything the state machines reported
// through the alert queue is flushed to stderr afterwards.
func Run(ctx context.Context, app *App, args []string) error {
	if len(args) == 0 {
		usage()
		return errUsage
	}
	defer flushAlerts(app)

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login":
		return runLogin(ctx, app, rest)
	case "logout":
		return runLogout(app)
	case "whoami":
		return runWhoami(ctx, app)
	case "recipes":
		return runRecipes(ctx, app, rest)
	case "lists":
		return runResource(ctx, app, app.Services.Lists, resourceView[models.ShoppingList]{
			Title: "Shopping Lists",
			ID:    func(l models.ShoppingList) string { return l.ListID },
			Label: func(l *models.ShoppingList) string { return l.Name },
			Columns: []table.Column[models.ShoppingList]{
				{Label: "Name", Format: func(l models.ShoppingList) string { return l.Name }},
				{Label: "Items", Center: true, Format: func(l models.ShoppingList) string { return strconv.Itoa(len(l.Items)) }},
			},
		}, rest)
	case "tokens":
		return runResource(ctx, app, app.Services.Tokens, resourceView[models.ApiToken]{
			Title: "Api Tokens",
			ID:    func(t models.ApiToken) string { return t.Name },
			Label: func(t *models.ApiToken) string { return t.Name },
			Columns: []table.Column[models.ApiToken]{
				{Label: "Name", Format: func(t models.ApiToken) string { return t.Name }},
				{Label: "Scopes", Format: func(t models.ApiToken) string { return strings.Join(t.Scopes, " ") }},
			},
		}, rest)
	case "shares":
		return runResource(ctx, app, app.Services.Shares, resourceView[models.ShareRequest]{
			Title: "Share Requests",
			ID:    func(s models.ShareRequest) string { return s.ID },
			Label: func(s *models.ShareRequest) string { return s.Requester },
			Columns: []table.Column[models.ShareRequest]{
				{Label: "Requester", Format: func(s models.ShareRequest) string { return s.Requester }},
				{Label: "Approver", Format: func(s models.ShareRequest) string { return s.Approver }},
				{Label: "Status", Center: true, Format: func(s models.ShareRequest) string { return s.ApprovalStatus }},
			},
		}, rest)
	case "audits":
		return runResource(ctx, app, app.Services.Audits, resourceView[models.AuditLog]{
			Title: "Audit Logs",
			ID:    func(a models.AuditLog) string { return a.ID },
			Label: func(a *models.AuditLog) string { return a.ID },
			Columns: []table.Column[models.AuditLog]{
				{Label: "Resource", Format: func(a models.AuditLog) string { return a.ResourceType + "/" + a.ResourceID }},
				{Label: "Action", Center: true, Format: func(a models.AuditLog) string { return a.Action }},
			},
		}, rest)
	case "settings":
		return runSettings(ctx, app, rest)
	default:
		usage()
		return errUsage
	}
}

func runLogin(ctx context.Context, app *App, args []string) error {
	if len(args) == 0 {
		fmt.Println(app.Services.Auth.LoginEndpoint(app.Config.Host, ""))
		return nil
	}

	raw := args[0]
	if raw == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		raw = strings.TrimSpace(string(data))
	}

	// Accept the full redirect URL or the bare fragment
	if i := strings.Index(raw, "#"); i >= 0 {
		raw = raw[i:]
	}
	token, ok := session.ParseTokenFragment(raw)
	if !ok {
		return apperrors.ErrNotLoginHash
	}

	app.Authorizer.Login(token)
	app.Authorizer.Refresh(ctx)

	user := app.Authorizer.User()
	if user.Username == "" {
		fmt.Println("ok")
		return nil
	}
	return printJSON(user.UserInfo)
}

func runLogout(app *App) error {
	app.Authorizer.Logout()
	fmt.Println(app.Services.Auth.LogoutEndpoint(app.Config.Host))
	return nil
}

func runWhoami(ctx context.Context, app *App) error {
	if !app.Authorizer.IsLoggedIn() {
		return apperrors.ErrNotLoggedIn
	}

	app.Authorizer.Refresh(ctx)
	user := app.Authorizer.User()
	if user.Username == "" {
		return errors.New("profile fetch failed")
	}
	return printJSON(user.UserInfo)
}

func runRecipes(ctx context.Context, app *App, args []string) error {
	view := resourceView[models.Recipe]{
		Title: "Recipes",
		ID:    func(r models.Recipe) string { return r.RecipeID },
		Label: func(r *models.Recipe) string { return r.Name },
		Columns: []table.Column[models.Recipe]{
			{Label: "Name", Format: func(r models.Recipe) string { return r.Name }},
		},
	}

	if len(args) == 0 {
		usage()
		return errUsage
	}
	switch args[0] {
	case "create":
		if len(args) < 2 {
			return errors.New("need a JSON file argument")
		}
		update, err := decodeFile[models.RecipeUpdate](args[1])
		if err != nil {
			return err
		}
		created, err := app.Services.Recipes.Create(ctx, update)
		if err != nil {
			return err
		}
		return printJSON(created)
	case "update":
		if len(args) < 3 {
			return errors.New("need an id and a JSON file argument")
		}
		update, err := decodeFile[models.RecipeUpdate](args[2])
		if err != nil {
			return err
		}
		updated, err := app.Services.Recipes.Update(ctx, args[1], update)
		if err != nil {
			return err
		}
		return printJSON(updated)
	default:
		return runResource(ctx, app, app.Services.Recipes, view, args)
	}
}

func runSettings(ctx context.Context, app *App, args []string) error {
	if len(args) == 0 {
		usage()
		return errUsage
	}
	switch args[0] {
	case "get":
		settings, err := app.Services.Settings.One(ctx)
		if err != nil {
			return err
		}
		return printJSON(settings)
	case "update":
		if len(args) < 2 {
			return errors.New("need a JSON file argument")
		}
		update, err := decodeFile[models.SettingsUpdate](args[1])
		if err != nil {
			return err
		}
		updated, err := app.Services.Settings.Create(ctx, update)
		if err != nil {
			return err
		}
		return printJSON(updated)
	default:
		usage()
		return errUsage
	}
}

// resourceView holds the per resource table wiring for list commands.
type resourceView[T models.TransferObject] struct {
	Title   string
	ID      func(T) string
	Label   func(*T) string
	Columns []table.Column[T]
}

func runResource[T models.TransferObject](ctx context.Context, app *App, svc *api.Client[T], view resourceView[T], args []string) error {
	if len(args) == 0 {
		usage()
		return errUsage
	}

	switch args[0] {
	case "list":
		return runBrowse(ctx, app, svc, view, args[1:])
	case "get":
		if len(args) < 2 {
			return errors.New("need an id argument")
		}
		item, err := svc.Get(ctx, args[1])
		if err != nil {
			return err
		}
		return printJSON(item)
	case "rm":
		if len(args) < 2 {
			return errors.New("need an id argument")
		}
		deleted, err := svc.Delete(ctx, args[1])
		if err != nil {
			return err
		}
		fmt.Println(deleted)
		return nil
	default:
		usage()
		return errUsage
	}
}

func runBrowse[T models.TransferObject](ctx context.Context, app *App, svc *api.Client[T], view resourceView[T], args []string) error {
	fs := pflag.NewFlagSet("list", pflag.ContinueOnError)
	limit := fs.IntP("limit", "n", 25, "Page size")
	status := fs.String("status", "", "Status filter")
	sort := fs.String("sort", "", "Sort order (ASC, DESC)")
	all := fs.Bool("all", false, "Fetch every page")
	if err := fs.Parse(args); err != nil {
		return err
	}

	b := table.NewBrowser(table.BrowserConfig[T]{
		Title:         view.Title,
		Service:       svc,
		Alerts:        app.Alerts,
		Logger:        app.Logger,
		ResourceID:    view.ID,
		ResourceLabel: view.Label,
		Columns:       view.Columns,
		Params: models.Params{
			Limit:     *limit,
			Status:    *status,
			SortOrder: *sort,
		},
		ManuallyPage: !*all,
	})
	defer b.Close()

	for b.Loading() {
		if err := b.Poll(ctx); err != nil {
			return err
		}
	}
	return table.RenderTo(os.Stdout, b)
}

func decodeFile[U any](path string) (U, error) {
	var update U

	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return update, err
	}

	if err := json.Unmarshal(data, &update); err != nil {
		return update, fmt.Errorf("bad JSON payload: %w", err)
	}
	return update, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func flushAlerts(app *App) {
	for _, alert := range app.Alerts.Alerts() {
		fmt.Fprintf(os.Stderr, "[%s] %s\n", alert.Variant, alert.Message)
	}
}
