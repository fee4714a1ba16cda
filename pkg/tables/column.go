// Package tables describes how data tables on the pages are laid out. A Column is
// metadata only; the rendering layer maps the Renderer name to a component.
package tables

type Renderer string

const (
	RenderNone        Renderer = ""
	RenderProjectLink Renderer = "project-link"
	RenderTestRunLink Renderer = "testrun-link"
	RenderEditButton  Renderer = "edit-button"
	RenderCompareBox  Renderer = "compare-select"
)

type Column struct {
	Key        string   `json:"key"`
	Header     string   `json:"header"`
	Sortable   bool     `json:"sortable"`
	Filterable bool     `json:"filterable"`
	Component  Renderer `json:"component,omitempty"`
}

type ColumnOption func(*Column)

func Sortable() ColumnOption {
	return func(c *Column) { c.Sortable = true }
}

func Filterable() ColumnOption {
	return func(c *Column) { c.Filterable = true }
}

func RenderWith(r Renderer) ColumnOption {
	return func(c *Column) { c.Component = r }
}

// ColumnDef describes a column bound to the data field key. Columns are neither
// sortable nor filterable unless asked for.
func ColumnDef(key, header string, opts ...ColumnOption) Column {
	c := Column{Key: key, Header: header}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// ComponentColumnDef describes a column that isn't bound to a field, such as a row
// action button. It can never be sorted or filtered.
func ComponentColumnDef(header string, component Renderer) Column {
	return Column{Header: header, Component: component}
}
