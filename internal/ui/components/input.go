package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const inputBaseClasses = "h-10 w-full rounded-md border border-gray-300 bg-white px-3 py-2 text-sm shadow-sm placeholder:text-gray-400 focus:border-primary-600 focus:outline-none focus:ring-2 focus:ring-primary-600/20"

// InputProps configures an Input. Everything apart from the class (type, name, value, placeholder, required...) goes in Attrs.
type InputProps struct {
	Class string
	Attrs templ.Attributes
}

func (p InputProps) ClassName() string {
	return classNames(inputBaseClasses, p.Class, attrClass(p.Attrs))
}

// Input renders an <input> element
func Input(p InputProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return openTag(ctx, w, "input", p.ClassName(), nil, passthrough(p.Attrs, "class"))
	})
}
