// familychart runs kinship inference and layout over a JSON input file
// and writes the result as layout JSON or a self-contained HTML chart.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/dhimarketer/newDirReact-sub000/pkg/family"
	"github.com/dhimarketer/newDirReact-sub000/pkg/kinship"
	"github.com/dhimarketer/newDirReact-sub000/pkg/layout"
)

type inputFile struct {
	Persons       []family.Person       `json:"persons"`
	Relationships []family.Relationship `json:"relationships"`
}

func main() {
	inPath := flag.String("in", "", "Input JSON file with persons and relationships")
	outPath := flag.String("out", "", "Output file (default: stdout for json, chart.html for html)")
	format := flag.String("format", "json", "Output format: json or html")
	width := flag.Float64("width", layout.DefaultWidth, "Container width in pixels")
	secondPass := flag.Bool("second-pass", false, "Detect grandparent/grandchild generations from ages")
	flag.Parse()

	if *inPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(*inPath)
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}
	var input inputFile
	if err := json.Unmarshal(data, &input); err != nil {
		log.Fatalf("Failed to parse input: %v", err)
	}

	c := kinship.ClassifyWithOptions(input.Persons, input.Relationships,
		kinship.Options{SecondPass: *secondPass})
	result := layout.Compute(c, *width)

	switch *format {
	case "json":
		out := os.Stdout
		if *outPath != "" {
			f, err := os.Create(*outPath)
			if err != nil {
				log.Fatalf("Failed to create output: %v", err)
			}
			defer f.Close()
			out = f
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			log.Fatalf("Failed to write layout: %v", err)
		}
	case "html":
		path := *outPath
		if path == "" {
			path = "chart.html"
		}
		if err := renderHTML(result, path); err != nil {
			log.Fatalf("Failed to render chart: %v", err)
		}
		fmt.Printf("Wrote %s (%d nodes, %d edges)\n", path, len(result.Nodes), len(result.Edges))
	default:
		log.Fatalf("Unknown format %q (want json or html)", *format)
	}
}

// renderHTML draws the computed layout as a go-echarts graph with
// every node pinned at its computed coordinate.
func renderHTML(result *layout.Result, path string) error {
	// echarts identifies nodes by name, so names must be unique;
	// duplicate person names get their pid appended.
	nameOf := make(map[string]string, len(result.Nodes))
	used := make(map[string]bool, len(result.Nodes))
	for _, n := range result.Nodes {
		name := n.ID
		if n.Kind == layout.KindPerson {
			name = n.Label
			if used[name] {
				name = fmt.Sprintf("%s (%d)", n.Label, n.PID)
			}
		}
		used[name] = true
		nameOf[n.ID] = name
	}

	nodes := make([]opts.GraphNode, 0, len(result.Nodes))
	for _, n := range result.Nodes {
		node := opts.GraphNode{
			Name: nameOf[n.ID],
			X:    float32(n.X + n.Width/2),
			Y:    float32(n.Y + n.Height/2),
		}
		if n.Kind == layout.KindPerson {
			node.SymbolSize = 40
		} else {
			node.SymbolSize = 1
		}
		nodes = append(nodes, node)
	}

	links := make([]opts.GraphLink, 0, len(result.Edges))
	for _, e := range result.Edges {
		links = append(links, opts.GraphLink{
			Source: nameOf[e.Source],
			Target: nameOf[e.Target],
		})
	}

	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "family chart",
			Width:     fmt.Sprintf("%.0fpx", result.Width),
			Height:    fmt.Sprintf("%.0fpx", result.Height),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	graph.AddSeries(
		"family",
		nodes,
		links,
		charts.WithGraphChartOpts(opts.GraphChart{Layout: "none", Roam: opts.Bool(true)}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Color: "black", Position: "bottom"}),
	)

	page := components.NewPage()
	page.AddCharts(graph)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return page.Render(f)
}
