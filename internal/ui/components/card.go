package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const cardBaseClasses = "rounded-xl border border-gray-200 bg-white p-4 shadow-sm"

type CardProps struct {
	Class string
	Attrs templ.Attributes
}

func (p CardProps) ClassName() string {
	return classNames(cardBaseClasses, p.Class, attrClass(p.Attrs))
}

// Card renders its children in a bordered <div>
func Card(p CardProps, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := openTag(ctx, w, "div", p.ClassName(), nil, passthrough(p.Attrs, "class")); err != nil {
			return err
		}
		if err := renderChildren(ctx, w, children); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</div>")
		return err
	})
}
