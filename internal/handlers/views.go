package handlers

import (
	"bytes"
	"html/template"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Presentation is deliberately bare: a handful of unstyled pages defined
// inline. html/template handles escaping of user-supplied titles and names.
var pageTemplates = template.Must(template.New("pages").Parse(`
{{define "flash"}}{{if .Flash}}<p class="flash">{{.Flash}}</p>{{end}}{{end}}

{{define "home"}}<!DOCTYPE html>
<html><head><title>To-Do</title></head><body>
{{template "flash" .}}
<h1>To-Do</h1>
<p><a href="/login">Log in</a> or <a href="/register">register</a>.</p>
</body></html>{{end}}

{{define "register"}}<!DOCTYPE html>
<html><head><title>Register</title></head><body>
{{template "flash" .}}
<h1>Register</h1>
<form method="post" action="/register">
<label>Username <input name="username" maxlength="80"></label>
<label>Password <input name="password" type="password"></label>
<button type="submit">Register</button>
</form>
<p><a href="/login">Log in</a></p>
</body></html>{{end}}

{{define "login"}}<!DOCTYPE html>
<html><head><title>Log in</title></head><body>
{{template "flash" .}}
<h1>Log in</h1>
<form method="post" action="/login">
<label>Username <input name="username" maxlength="80"></label>
<label>Password <input name="password" type="password"></label>
<button type="submit">Log in</button>
</form>
<p><a href="/register">Register</a></p>
</body></html>{{end}}

{{define "tasks"}}<!DOCTYPE html>
<html><head><title>Your tasks</title></head><body>
{{template "flash" .}}
<h1>Tasks for {{.Username}}</h1>
<form method="post" action="/tasks">
<input name="task_title" maxlength="200" placeholder="New task">
<button type="submit">Add</button>
</form>
<h2>Pending</h2>
<ul>
{{range .Pending}}<li>{{.Title}} <a href="/done/{{.ID}}">done</a> <a href="/delete/{{.ID}}">delete</a></li>
{{end}}</ul>
<h2>Completed</h2>
<ul>
{{range .Done}}<li>{{.Title}} <a href="/undo/{{.ID}}">undo</a> <a href="/delete/{{.ID}}">delete</a></li>
{{end}}</ul>
<p><a href="/logout">Log out</a></p>
</body></html>{{end}}
`))

// render executes a named page template and writes it as HTML.
func render(c *fiber.Ctx, name string, data interface{}) error {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

const flashCookieName = "todo_flash"

// setFlash stores a one-shot message shown on the next rendered page.
func setFlash(c *fiber.Ctx, message string) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookieName,
		Value:    url.QueryEscape(message),
		Path:     "/",
		HTTPOnly: true,
	})
}

// popFlash reads and clears the pending flash message, if any.
func popFlash(c *fiber.Ctx) string {
	value := c.Cookies(flashCookieName)
	if value == "" {
		return ""
	}
	c.Cookie(&fiber.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	message, err := url.QueryUnescape(value)
	if err != nil {
		return ""
	}
	return message
}
