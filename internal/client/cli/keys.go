package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/securevault/internal/client/models"
	"github.com/dmitrijs2005/securevault/internal/client/services"
	"github.com/dmitrijs2005/securevault/internal/common"
)

var errBadDate = errors.New("dates must look like 2006-01-02")

// now is a test seam for the clock used in rendering.
var now = time.Now

func (a *App) List(ctx context.Context, term string) error {
	return a.scoped(ctx, func(ctx context.Context) error {
		a.router.Navigate(services.RouteKeys)
		if err := a.keys.List(ctx); err != nil {
			return err
		}
		keys := services.FilterKeys(a.store.Snapshot().Keys, term)
		renderKeyTable(a.out, keys, now())
		return nil
	})
}

func (a *App) Show(ctx context.Context, id string) error {
	return a.showKey(ctx, id, false)
}

func (a *App) Reveal(ctx context.Context, id string) error {
	return a.showKey(ctx, id, true)
}

func (a *App) showKey(ctx context.Context, id string, reveal bool) error {
	return a.scoped(ctx, func(ctx context.Context) error {
		k, err := a.keys.Load(ctx, id)
		if err != nil {
			return err
		}
		a.router.Navigate(services.KeyRoute(id))
		renderKey(a.out, k, reveal, now())
		return nil
	})
}

func (a *App) Add(ctx context.Context) error {
	return a.scoped(ctx, func(ctx context.Context) error {
		a.router.Navigate(services.RouteNewKey)

		form := services.NewKeyForm()
		if err := a.fillForm(form, nil); err != nil {
			a.notifier.Error("Error", err.Error())
			return err
		}
		_, err := a.keys.Create(ctx, form)
		return err
	})
}

func (a *App) Edit(ctx context.Context, id string) error {
	return a.scoped(ctx, func(ctx context.Context) error {
		k, err := a.keys.Load(ctx, id)
		if err != nil {
			return err
		}
		a.router.Navigate(services.EditKeyRoute(id))

		form := services.EditForm(k)
		if err := a.fillForm(form, k); err != nil {
			a.notifier.Error("Error", err.Error())
			return err
		}
		_, err = a.keys.Update(ctx, id, form)
		return err
	})
}

func (a *App) Delete(ctx context.Context, id string) error {
	return a.scoped(ctx, func(ctx context.Context) error {
		_, err := a.keys.Delete(ctx, id)
		return err
	})
}

// Copy puts one field of key id on the clipboard. field is value, username
// or url.
func (a *App) Copy(ctx context.Context, id, field string) error {
	return a.scoped(ctx, func(ctx context.Context) error {
		k, ok := a.store.Get(id)
		if !ok {
			var err error
			if k, err = a.keys.Load(ctx, id); err != nil {
				return err
			}
		}

		switch strings.ToLower(field) {
		case "", "value":
			return services.Copy(a.clipboard, a.notifier, "Value", k.Value)
		case "username":
			return services.Copy(a.clipboard, a.notifier, "Username", k.Username)
		case "url":
			return services.Copy(a.clipboard, a.notifier, "URL", k.URL)
		}
		err := fmt.Errorf("unknown field %q", field)
		a.notifier.Error("Error", "Field must be one of value, username, url")
		return err
	})
}

func (a *App) Stats(ctx context.Context) error {
	return a.scoped(ctx, func(ctx context.Context) error {
		a.router.Navigate(services.RouteDashboard)
		if err := a.keys.List(ctx); err != nil {
			return err
		}
		renderSummary(a.out, services.Summarize(a.store.Snapshot().Keys, now()))
		return nil
	})
}

// fillForm prompts for every field. With a current key an empty answer keeps
// the existing value and "-" clears an optional one.
func (a *App) fillForm(form *services.KeyForm, current *models.SecurityKey) error {
	editing := current != nil

	ask := func(label, cur string) (string, error) {
		prompt := label
		if editing {
			prompt = fmt.Sprintf("%s [%s]", label, cur)
		}
		return getSimpleText(a.reader, prompt, a.out)
	}
	keepOr := func(answer, cur string, optional bool) string {
		switch {
		case answer == "" && editing:
			return cur
		case answer == "-" && optional:
			return ""
		}
		return answer
	}

	name, err := ask("Name", form.Name)
	if err != nil {
		return err
	}
	form.Name = keepOr(name, form.Name, false)

	typ, err := ask(fmt.Sprintf("Type (%s)", typeChoices()), string(form.Type))
	if err != nil {
		return err
	}
	if typ = strings.ToLower(typ); typ != "" {
		form.Type = models.KeyType(typ)
	}

	user, err := ask("Username", form.Username)
	if err != nil {
		return err
	}
	form.Username = keepOr(user, form.Username, true)

	url, err := ask("URL", form.URL)
	if err != nil {
		return err
	}
	form.URL = keepOr(url, form.URL, true)

	desc, err := ask("Description", form.Description)
	if err != nil {
		return err
	}
	form.Description = keepOr(desc, form.Description, true)

	valuePrompt := "Value"
	if editing {
		valuePrompt = "Value (leave empty to keep)"
	}
	value, err := getPassword(valuePrompt, a.out)
	if err != nil {
		return err
	}
	if len(value) > 0 || !editing {
		form.Value = string(value)
	}
	common.WipeByteArray(value)

	exp, err := ask("Expires (YYYY-MM-DD)", formatDate(form.ExpiresAt))
	if err != nil {
		return err
	}
	if form.ExpiresAt, err = parseExpiry(exp, form.ExpiresAt); err != nil {
		return err
	}

	if editing {
		return a.editTags(&form.Tags)
	}
	raw, err := getSimpleText(a.reader, "Tags (comma separated)", a.out)
	if err != nil {
		return err
	}
	tags, err := models.TagsFromString(raw)
	if err != nil {
		return err
	}
	for _, t := range tags {
		form.Tags.Confirm(t)
	}
	return nil
}

// editTags applies "+tag" and "-tag" lines to the editor. A bare tag adds.
func (a *App) editTags(e *services.TagEditor) error {
	prompt := fmt.Sprintf("Tags [%s]: +tag adds, -tag removes", strings.Join(e.Tags(), ", "))
	lines, err := getLines(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	for _, l := range lines {
		l = strings.TrimSpace(l)
		switch {
		case strings.HasPrefix(l, "-"):
			e.Remove(strings.TrimSpace(l[1:]))
		case strings.HasPrefix(l, "+"):
			e.Confirm(l[1:])
		default:
			e.Confirm(l)
		}
	}
	return nil
}

func typeChoices() string {
	names := make([]string, len(models.KeyTypes))
	for i, t := range models.KeyTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

// parseExpiry reads a local date. Empty keeps cur, "-" clears it.
func parseExpiry(s string, cur *time.Time) (*time.Time, error) {
	switch s = strings.TrimSpace(s); s {
	case "":
		return cur, nil
	case "-":
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return nil, errBadDate
	}
	return &t, nil
}
