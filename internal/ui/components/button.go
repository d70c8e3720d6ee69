package components

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
	ButtonGhost     ButtonVariant = "ghost"
)

type ButtonSize string

const (
	ButtonSmall  ButtonSize = "sm"
	ButtonMedium ButtonSize = "md"
	ButtonLarge  ButtonSize = "lg"
)

// LoadingLabel replaces the button's children while IsLoading is set
const LoadingLabel = "Cargando…"

const buttonBaseClasses = "inline-flex items-center justify-center rounded-md font-medium transition-colors focus-visible:outline focus-visible:outline-2 focus-visible:outline-offset-2 disabled:opacity-60 disabled:cursor-not-allowed"

var buttonSizeClasses = map[ButtonSize]string{
	ButtonSmall:  "h-8 px-3 text-sm",
	ButtonMedium: "h-10 px-4 text-sm",
	ButtonLarge:  "h-12 px-6 text-base",
}

var buttonVariantClasses = map[ButtonVariant]string{
	ButtonPrimary:   "bg-primary-600 text-white hover:bg-primary-700 focus-visible:outline-primary-600",
	ButtonSecondary: "bg-white text-gray-900 ring-1 ring-gray-300 hover:bg-gray-50 focus-visible:outline-gray-400",
	ButtonGhost:     "bg-transparent text-gray-900 hover:bg-gray-100 focus-visible:outline-gray-400",
}

var (
	ErrUnknownVariant = errors.New("unknown button variant")
	ErrUnknownSize    = errors.New("unknown button size")
)

// ParseButtonVariant is used when the variant comes from user input - unknown values are rejected.
// The empty string selects the default variant.
func ParseButtonVariant(s string) (ButtonVariant, error) {
	if s == "" {
		return ButtonPrimary, nil
	}
	v := ButtonVariant(s)
	if _, ok := buttonVariantClasses[v]; !ok {
		return "", fmt.Errorf("%w: %q (valid variants: primary, secondary, ghost)", ErrUnknownVariant, s)
	}
	return v, nil
}

// ParseButtonSize rejects unknown sizes. The empty string selects the default size.
func ParseButtonSize(s string) (ButtonSize, error) {
	if s == "" {
		return ButtonMedium, nil
	}
	v := ButtonSize(s)
	if _, ok := buttonSizeClasses[v]; !ok {
		return "", fmt.Errorf("%w: %q (valid sizes: sm, md, lg)", ErrUnknownSize, s)
	}
	return v, nil
}

// ButtonProps configures a Button. The zero value is an enabled, medium, primary button.
//
// Variant and Size values that are not recognised fall back to the defaults when rendering.
type ButtonProps struct {
	Variant   ButtonVariant
	Size      ButtonSize
	IsLoading bool
	Disabled  bool
	// Class is appended after the component classes
	Class string
	// Attrs are forwarded to the <button> element (type, name, hx-post, onclick...).
	// "class" is appended to Class and "disabled" is combined with Disabled.
	Attrs templ.Attributes
}

func (p ButtonProps) variant() ButtonVariant {
	if _, ok := buttonVariantClasses[p.Variant]; ok {
		return p.Variant
	}
	return ButtonPrimary
}

func (p ButtonProps) size() ButtonSize {
	if _, ok := buttonSizeClasses[p.Size]; ok {
		return p.Size
	}
	return ButtonMedium
}

// ClassName returns the class attribute the button is rendered with
func (p ButtonProps) ClassName() string {
	return classNames(buttonBaseClasses,
		buttonSizeClasses[p.size()],
		buttonVariantClasses[p.variant()],
		p.Class,
		attrClass(p.Attrs),
	)
}

// IsDisabled reports whether the button is rendered disabled - either disabled by the caller or loading
func (p ButtonProps) IsDisabled() bool {
	return p.Disabled || p.IsLoading || attrBool(p.Attrs["disabled"])
}

// Button renders a <button>. While loading the button is disabled and shows LoadingLabel instead of its children.
func Button(p ButtonProps, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var boolAttrs []string
		if p.IsDisabled() {
			boolAttrs = append(boolAttrs, "disabled")
		}

		if err := openTag(ctx, w, "button", p.ClassName(), boolAttrs, passthrough(p.Attrs, "class", "disabled")); err != nil {
			return err
		}

		if p.IsLoading {
			if err := Text(LoadingLabel).Render(ctx, w); err != nil {
				return err
			}
		} else {
			if err := renderChildren(ctx, w, children); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, "</button>")
		return err
	})
}
