package treedbg

import (
	"fmt"
	"io"
	"strconv"
	"text/template"

	"github.com/lifestreamy/TreeBuilder/tree"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
	AttrTmpl *template.Template
}

// ToGraphViz outputs a diagram for a tree. The diagram is in GraphViz (DOT)
// format. Leaves are drawn as boxes, inner nodes as ellipses. If
// withAttributes is set, every node having attributes is linked to a table
// listing them.
func ToGraphViz[T any](t *tree.Tree[T], w io.Writer, withAttributes bool) error {
	tmpl, err := template.New("tree").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("treenode").Funcs(
		template.FuncMap{
			"quoted": quoted,
		}).Parse(treeNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("treeedge").Parse(treeEdgeTmpl))
	if withAttributes {
		gparams.AttrTmpl = template.Must(template.New("attrs").Parse(attrTableTmpl))
	}
	tracer().Debugf("writing tree %q as DOT, %d nodes", t.Name(), t.Len())
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[*tree.Node[T]]string, t.Len())
	if err = nodes(t.Root(), w, dict, &gparams); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

type node struct {
	Name  string
	Label string
	Leaf  bool
	Attrs []string
}

func nodes[T any](n *tree.Node[T], w io.Writer, dict map[*tree.Node[T]]string, gparams *graphParamsType) error {
	if err := treeNode(n, w, dict, gparams); err != nil {
		return err
	}
	for _, ch := range n.Children() {
		if err := nodes(ch, w, dict, gparams); err != nil {
			return err
		}
		e := edge{N1: dict[n], N2: dict[ch], Index: ch.Index()}
		if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
			return err
		}
	}
	return nil
}

func treeNode[T any](n *tree.Node[T], w io.Writer, dict map[*tree.Node[T]]string, gparams *graphParamsType) error {
	name := fmt.Sprintf("node%05d", len(dict)+1)
	dict[n] = name
	gn := &node{Name: name, Label: n.Name(), Leaf: !n.HasChildren()}
	if err := gparams.NodeTmpl.Execute(w, gn); err != nil {
		return err
	}
	attrs := n.Attributes()
	if gparams.AttrTmpl == nil || len(attrs) == 0 {
		return nil
	}
	for _, a := range attrs {
		gn.Attrs = append(gn.Attrs, fmt.Sprint(a))
	}
	return gparams.AttrTmpl.Execute(w, gn)
}

type edge struct {
	N1, N2 string
	Index  int
}

// quoted renders s as a DOT string. Line breaks become \n, which DOT draws
// as centered line breaks.
func quoted(s string) string {
	return strconv.Quote(s)
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "TB"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const treeNodeTmpl = `{{ if .Leaf }}
{{ .Name }}	[ label={{ quoted .Label }} shape=box style=filled fillcolor=grey95 ] ;
{{ else }}
{{ .Name }}	[ label={{ quoted .Label }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const treeEdgeTmpl = `{{ .N1 }} -> {{ .N2 }} [label="{{ .Index }}" weight=1] ;
`

const attrTableTmpl = `{{ .Name }}_attrs [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      {{ range $i, $a := .Attrs }}
      <tr><td align="right">{{ $i }}:</td><td>{{ html $a }}</td></tr>
      {{ end }}
    </table>> ] ;
{{ .Name }} -> {{ .Name }}_attrs [dir=none weight=1 style="dashed"] ;
`
