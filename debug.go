package rivet

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// GraphInfo is a structured snapshot of the container's bindings, in
// registration order.
type GraphInfo struct {
	Bindings  []BindingInfo
	Runnables []string
}

type BindingInfo struct {
	Key          string
	Lifetime     Lifetime
	Dependencies []string
	Constructed  bool
}

// Graph returns a snapshot of the registration table and runnable sequence.
func (c *Container) Graph() GraphInfo {
	keys := c.internal.Keys()
	bindings := make([]BindingInfo, 0, len(keys))

	for _, key := range keys {
		d, err := c.internal.Lookup(key)
		if err != nil {
			continue
		}

		_, constructed := d.Held()
		bindings = append(
			bindings, BindingInfo{
				Key:          key,
				Lifetime:     d.Lifetime(),
				Dependencies: d.Dependencies(),
				Constructed:  constructed,
			},
		)
	}

	return GraphInfo{
		Bindings:  bindings,
		Runnables: c.internal.Runnables(),
	}
}

func (c *Container) PrintGraph() {
	c.FprintGraph(os.Stdout)
}

func (c *Container) FprintGraph(w io.Writer) {
	info := c.Graph()

	if len(info.Bindings) == 0 {
		_, _ = fmt.Fprintln(w, "(empty container)")
		return
	}

	for _, b := range info.Bindings {
		status := "○"
		if b.Constructed {
			status = "●"
		}

		if len(b.Dependencies) == 0 {
			_, _ = fmt.Fprintf(w, "%s %s [%s]\n", status, b.Key, b.Lifetime)
		} else {
			_, _ = fmt.Fprintf(w, "%s %s [%s] ← %s\n", status, b.Key, b.Lifetime, strings.Join(b.Dependencies, ", "))
		}
	}
}

func (c *Container) SprintGraph() string {
	var sb strings.Builder
	c.FprintGraph(&sb)
	return sb.String()
}

func (c *Container) PrintGraphDOT() {
	c.FprintGraphDOT(os.Stdout)
}

func (c *Container) FprintGraphDOT(w io.Writer) {
	info := c.Graph()

	_, _ = fmt.Fprintln(w, "digraph bindings {")
	_, _ = fmt.Fprintln(w, "  rankdir=LR;")
	_, _ = fmt.Fprintln(w, "  node [shape=box];")

	for _, b := range info.Bindings {
		label := escapeLabel(b.Key)
		style := ""
		if b.Constructed {
			style = ", style=filled, fillcolor=lightblue"
		}
		_, _ = fmt.Fprintf(w, "  %q [label=%q%s];\n", b.Key, label, style)
	}

	_, _ = fmt.Fprintln(w)

	for _, b := range info.Bindings {
		for _, dep := range b.Dependencies {
			_, _ = fmt.Fprintf(w, "  %q -> %q;\n", b.Key, dep)
		}
	}

	_, _ = fmt.Fprintln(w, "}")
}

func (c *Container) SprintGraphDOT() string {
	var sb strings.Builder
	c.FprintGraphDOT(&sb)
	return sb.String()
}

func escapeLabel(s string) string {
	s = strings.ReplaceAll(s, "*", "")
	if idx := strings.LastIndex(s, "/"); idx != -1 {
		s = s[idx+1:]
	}
	return s
}
