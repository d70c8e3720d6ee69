// the components package contains the dashboard's presentational building blocks (Button, Card, Input).
//
// Each component is a templ.Component that renders a single element. Class names are built from a fixed base set,
// then the option lookups, then any caller supplied class - later classes never remove earlier ones.
// Attrs are forwarded to the element as given, except for the keys the component handles itself.
package components

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// classNames joins the non-empty class lists in order
func classNames(base string, parts ...string) string {
	classes := []any{base}
	for _, p := range parts {
		classes = append(classes, templ.KV(p, strings.TrimSpace(p) != ""))
	}
	return templ.Classes(classes...).String()
}

// passthrough returns attrs without the reserved keys
func passthrough(attrs templ.Attributes, reserved ...string) templ.Attributes {
	out := make(templ.Attributes, len(attrs))
	for k, v := range attrs {
		out[k] = v
	}
	for _, k := range reserved {
		delete(out, k)
	}
	return out
}

// attrClass returns a class supplied through Attrs
func attrClass(attrs templ.Attributes) string {
	if s, ok := attrs["class"].(string); ok {
		return s
	}
	return ""
}

// attrBool reports whether a boolean attribute is switched on. Any string value counts as present.
func attrBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return true
	default:
		return false
	}
}

// renderChildren renders the explicit children, or the templ children in ctx when there are none
func renderChildren(ctx context.Context, w io.Writer, children []templ.Component) error {
	if len(children) == 0 {
		if c := templ.GetChildren(ctx); c != nil {
			children = []templ.Component{c}
		}
	}
	ctx = templ.ClearChildren(ctx)

	for _, c := range children {
		if err := c.Render(ctx, w); err != nil {
			return err
		}
	}
	return nil
}

// openTag writes "<tag class=... attrs>"
func openTag(ctx context.Context, w io.Writer, tag, class string, boolAttrs []string, attrs templ.Attributes) error {
	if _, err := io.WriteString(w, "<"+tag+` class="`+templ.EscapeString(class)+`"`); err != nil {
		return err
	}
	for _, name := range boolAttrs {
		if _, err := io.WriteString(w, " "+name); err != nil {
			return err
		}
	}
	if err := templ.RenderAttributes(ctx, w, attrs); err != nil {
		return err
	}
	_, err := io.WriteString(w, ">")
	return err
}

// Text renders s as escaped text
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}
