// the pages package composes the layout and components into the pages served by the dashboard.
package pages

import (
	"github.com/a-h/templ"

	"github.com/datosprovida/dashboard/internal/ui/components"
	"github.com/datosprovida/dashboard/internal/ui/layout"
)

// Home is the dashboard landing page
func Home(meta layout.Metadata) templ.Component {
	search := components.Card(components.CardProps{Class: "mx-auto max-w-xl"},
		templ.Raw(`<h1 class="mb-4 text-xl font-semibold">`+templ.EscapeString(meta.Title.Default)+`</h1>`),
		templ.Raw(`<form class="flex gap-2" method="get" action="/">`),
		components.Input(components.InputProps{
			Attrs: templ.Attributes{
				"type":        "search",
				"name":        "q",
				"placeholder": "Buscar indicadores",
				"aria-label":  "Buscar indicadores",
			},
		}),
		components.Button(components.ButtonProps{Attrs: templ.Attributes{"type": "submit"}}, components.Text("Buscar")),
		components.Button(components.ButtonProps{Variant: components.ButtonGhost, Attrs: templ.Attributes{"type": "reset"}}, components.Text("Limpiar")),
		templ.Raw(`</form>`),
	)

	return layout.Shell(meta, "", mainContainer(search))
}

// NotFound is rendered for unknown paths
func NotFound(meta layout.Metadata) templ.Component {
	card := components.Card(components.CardProps{Class: "mx-auto max-w-xl text-center"},
		templ.Raw(`<h1 class="mb-2 text-xl font-semibold">Página no encontrada</h1>`),
		templ.Raw(`<p class="mb-4 text-sm text-gray-600">La página que busca no existe.</p>`),
		templ.Raw(`<form method="get" action="/">`),
		components.Button(components.ButtonProps{Variant: components.ButtonSecondary, Attrs: templ.Attributes{"type": "submit"}}, components.Text("Volver al inicio")),
		templ.Raw(`</form>`),
	)

	return layout.Shell(meta, "Página no encontrada", mainContainer(card))
}

func mainContainer(children ...templ.Component) templ.Component {
	return templ.Join(
		templ.Raw(`<main class="px-4 py-10">`),
		templ.Join(children...),
		templ.Raw(`</main>`),
	)
}
