// Package paths provides the paths of the web UI.
package paths

import "path"

// UIPrefix is the prefix of every view path.
const UIPrefix = "/app"

// View returns the path for a navigation state.
func View(state string) string {
	return path.Join(UIPrefix, state)
}

func Contacts() string { return View("contacts") }

func Contact(rowKey string) string { return View("contact/row=" + rowKey) }

func About() string { return View("about") }

func CreateContact() string { return path.Join(UIPrefix, "contacts", "create") }

func DeleteContact() string { return path.Join(UIPrefix, "contacts", "delete") }
