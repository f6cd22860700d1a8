package codegen

import "text/template"

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by symgen. DO NOT EDIT.

package {{.Package}}

import "{{.Import}}"
{{range .Types}}{{.}}{{end}}`))

var typeTemplate = template.Must(template.New("type").Parse(`
// {{.Type}} stores a rank-{{.Rank}} tensor with {{.Summary}}.
type {{.Type}}[T symmetry.Scalar] struct {
	dim  int
	data []T
}

// New{{.Type}} allocates zeroed storage for dimension dim.
func New{{.Type}}[T symmetry.Scalar](dim int) *{{.Type}}[T] {
	return &{{.Type}}[T]{dim: dim, data: make([]T, {{.Type}}Size(dim))}
}

// {{.Type}}Size returns the number of independent components, {{.SizeDoc}}.
func {{.Type}}Size(dim int) int {
	return {{.Size}}
}

// {{.Type}}Offset returns 0 if the element is identically zero and
// ±(slot+1) otherwise. Indices must lie in [0, dim).
func {{.Type}}Offset(dim int{{if .Params}}, {{.Params}}{{end}}) int {
{{- if .Odd}}
	odd := false
{{- end}}
{{- range .Steps}}
	{{.Var}} := [{{.Size}}]int{ {{- .Values -}} }
{{- if .Anti}}
	flip{{.Group}}, zero{{.Group}} := symmetry.Canonicalize({{.Var}}[:], symmetry.Antisymmetric)
	if zero{{.Group}} {
		return 0
	}
	if flip{{.Group}} {
		odd = !odd
	}
{{- else}}
	symmetry.Canonicalize({{.Var}}[:], symmetry.Symmetric)
{{- end}}
{{- end}}
	index := {{.Index}}
{{- if .Odd}}
	if odd {
		return -(index + 1)
	}
{{- end}}
	return index + 1
}

// Len returns the number of stored components.
func (t *{{.Type}}[T]) Len() int {
	return len(t.data)
}

// Data returns the backing slice.
func (t *{{.Type}}[T]) Data() []T {
	return t.data
}

// At returns the element ({{.Args}}).
func (t *{{.Type}}[T]) At({{.Params}}) (T, error) {
	var zero T
	if err := symmetry.CheckIndices(t.dim{{if .Args}}, {{.Args}}{{end}}); err != nil {
		return zero, err
	}
	off := {{.Type}}Offset(t.dim{{if .Args}}, {{.Args}}{{end}})
	switch {
	case off > 0:
		return t.data[off-1], nil
	case off < 0:
		return -t.data[-off-1], nil
	}
	return zero, nil
}

// Set writes the element ({{.Args}}).
func (t *{{.Type}}[T]) Set(v T{{if .Params}}, {{.Params}}{{end}}) error {
	if err := symmetry.CheckIndices(t.dim{{if .Args}}, {{.Args}}{{end}}); err != nil {
		return err
	}
	switch off := {{.Type}}Offset(t.dim{{if .Args}}, {{.Args}}{{end}}); {
	case off > 0:
		t.data[off-1] = v
	case off < 0:
		t.data[-off-1] = -v
	default:
		return symmetry.ErrZeroSlot
	}
	return nil
}
`))
