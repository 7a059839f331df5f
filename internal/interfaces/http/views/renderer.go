// Package views renders the server-side HTML pages with pongo2.
package views

import (
	"embed"
	"io/fs"
	"net/http"
	"time"

	"github.com/flosch/pongo2/v6"
	"github.com/gin-gonic/gin"
	"github.com/xeonx/timeago"

	"ticketdesk/internal/shared/constants"
	"ticketdesk/internal/shared/logger"
	"ticketdesk/internal/shared/version"
)

//go:embed templates/*.html
var templateFS embed.FS

const dateTimeLayout = "Jan 2, 2006 15:04"

func init() {
	registerFilter("timeago", filterTimeAgo)
	registerFilter("datetime", filterDateTime)
}

func registerFilter(name string, fn pongo2.FilterFunction) {
	if pongo2.FilterExists(name) {
		_ = pongo2.ReplaceFilter(name, fn)
		return
	}
	_ = pongo2.RegisterFilter(name, fn)
}

// Renderer executes the embedded page templates.
type Renderer struct {
	set    *pongo2.TemplateSet
	logger logger.Interface
}

func NewRenderer(log logger.Interface) (*Renderer, error) {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		return nil, err
	}
	return &Renderer{
		set:    pongo2.NewSet("ticketdesk", pongo2.NewFSLoader(sub)),
		logger: log,
	}, nil
}

// HTML renders the named template with data plus the per-request globals.
// The page is rendered into memory first so a template failure never leaves
// a half-written response.
func (r *Renderer) HTML(c *gin.Context, code int, name string, data pongo2.Context) {
	ctx := pongo2.Context{}
	for k, v := range data {
		ctx[k] = v
	}
	ctx["version"] = version.Current()
	ctx["request_path"] = c.Request.URL.Path
	if flash, ok := c.Get(constants.ContextKeyFlash); ok {
		ctx["flash"] = flash
	}
	if sess, ok := c.Get(constants.ContextKeySession); ok {
		ctx["session"] = sess
	}

	tmpl, err := r.set.FromCache(name)
	if err != nil {
		r.logger.Errorw("failed to load template", "template", name, "error", err)
		c.String(http.StatusInternalServerError, "Template not found: %s", name)
		return
	}

	out, err := tmpl.ExecuteBytes(ctx)
	if err != nil {
		r.logger.Errorw("failed to render template", "template", name, "error", err)
		c.String(http.StatusInternalServerError, "Template execution error")
		return
	}

	c.Data(code, constants.ContentTypeHTML, out)
}

// Error renders the error page with a user-facing message.
func (r *Renderer) Error(c *gin.Context, code int, message string) {
	r.HTML(c, code, "error.html", pongo2.Context{
		"title":   http.StatusText(code),
		"code":    code,
		"message": message,
	})
}

func asTime(in *pongo2.Value) (time.Time, bool) {
	switch v := in.Interface().(type) {
	case time.Time:
		return v, !v.IsZero()
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, !v.IsZero()
	default:
		return time.Time{}, false
	}
}

func filterTimeAgo(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	t, ok := asTime(in)
	if !ok {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(timeago.English.Format(t)), nil
}

func filterDateTime(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	t, ok := asTime(in)
	if !ok {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(t.Local().Format(dateTimeLayout)), nil
}
