package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/leg100/viewport/internal"
	"github.com/leg100/viewport/internal/contact"
	"github.com/leg100/viewport/internal/grid"
	"github.com/leg100/viewport/internal/http/html"
	"github.com/leg100/viewport/internal/ui/helpers"
	"github.com/leg100/viewport/internal/ui/paths"
)

// All markup of the UI lives in this file. Every value interpolated into it
// is escaped with templ.

const layoutHead = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>%s | viewport</title>
</head>
<body>
  <nav><a href="%s">Contacts</a> <a href="%s">About</a></nav>
  <main>
`

const layoutFoot = `
  </main>
</body>
</html>
`

// layout wraps the component of the active view in a page.
func layout(title string, flashes []helpers.Flash, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, layoutHead, templ.EscapeString(title), paths.Contacts(), paths.About()); err != nil {
			return err
		}
		if err := helpers.Flashes(flashes).Render(ctx, w); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, layoutFoot)
		return err
	})
}

func contactsPage(table *grid.Grid[*contact.Contact, string]) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<h1>Contacts</h1>"); err != nil {
			return err
		}
		if len(table.Items()) == 0 {
			if _, err := io.WriteString(w, "<p>No contacts yet.</p>"); err != nil {
				return err
			}
		} else if err := table.Render(ctx, w); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, `<form method="post" action="%s">`+
			`<input name="name" placeholder="Name" required>`+
			`<input name="email" type="email" placeholder="Email">`+
			`<textarea name="notes" placeholder="Notes (markdown)"></textarea>`+
			`<button type="submit">Add contact</button></form>`,
			paths.CreateContact())
		return err
	})
}

func contactPage(c *contact.Contact, rowKey string, lookupErr error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if lookupErr != nil {
			_, err := fmt.Fprintf(w, `<h1>Contact</h1><p class="error">%s</p><p><a href="%s">Back to contacts</a></p>`,
				templ.EscapeString(lookupErr.Error()), paths.Contacts())
			return err
		}
		_, err := fmt.Fprintf(w, `<h1>%s</h1><p><a href="mailto:%s">%s</a></p><div class="notes">`,
			templ.EscapeString(c.Name),
			templ.EscapeString(c.Email),
			templ.EscapeString(c.Email))
		if err != nil {
			return err
		}
		if err := html.Markdown(c.Notes).Render(ctx, w); err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, `</div>`+
			`<form method="post" action="%s"><input type="hidden" name="row" value="%s">`+
			`<button type="submit">Delete</button></form>`+
			`<p><a href="%s">Back to contacts</a></p>`,
			paths.DeleteContact(), templ.EscapeString(rowKey), paths.Contacts())
		return err
	})
}

func aboutPage() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, "<h1>About</h1><p>viewport %s (commit %s)</p>",
			templ.EscapeString(internal.Version), templ.EscapeString(internal.Commit))
		return err
	})
}

func notFoundPage(state string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<h1>Not found</h1><p>There is no view for "%s".</p>`, templ.EscapeString(state))
		return err
	})
}
