package templates

import (
	"bytes"
	"fmt"
	htmpl "html/template"
)

// Subjects per template name.
var subjects = map[string]string{
	"welcome": "Welcome to voteboard",
}

var welcomeHTML = htmpl.Must(htmpl.New("welcome").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: sans-serif; color: #333;">
    <h2>Welcome!</h2>
    <p>Your account <strong>{{ .Email }}</strong> is ready.</p>
    <p>Log in to start posting and voting.</p>
  </body>
</html>`))

// Render renders the named template against data and returns subject and
// HTML body.
func Render(name string, data map[string]any) (subject, html string, err error) {
	switch name {
	case "welcome":
		var buf bytes.Buffer
		if err := welcomeHTML.Execute(&buf, data); err != nil {
			return "", "", err
		}
		return subjects[name], buf.String(), nil
	default:
		return "", "", fmt.Errorf("unknown email template %q", name)
	}
}
