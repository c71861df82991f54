package flow_test

import (
	"fmt"

	"github.com/kunhq/kundocs/pkg/diagram/flow"
	"github.com/kunhq/kundocs/pkg/diagram/icon"
)

func ExampleLayout() {
	chart := flow.Chart{
		Nodes: []flow.Node{
			{ID: "install", Label: "Install Tailscale", Icon: icon.Cloud},
			{ID: "ssh", Label: "Enable SSH", Icon: icon.Shield},
		},
		Edges: []flow.Edge{
			{From: "install", To: "ssh", Note: "tailscale up --ssh"},
			{From: "ssh", To: "tmux"},
		},
	}
	d := flow.Layout(chart, flow.DefaultOptions())
	for _, r := range d.Rows {
		fmt.Printf("%s (%s) -> %s (%s) fallback=%v\n", r.From.Label, r.From.Icon, r.To.Label, r.To.Icon, r.To.Fallback)
	}
	// Output:
	// Install Tailscale (cloud) -> Enable SSH (shield) fallback=false
	// Enable SSH (shield) -> tmux (layers) fallback=true
}

func ExampleToDOT() {
	chart := flow.Chart{
		Nodes: []flow.Node{{ID: "dev", Label: "Developer"}, {ID: "vpn", Label: "Tailscale VPN"}},
		Edges: []flow.Edge{{From: "dev", To: "vpn"}},
	}
	fmt.Print(flow.ToDOT(chart, flow.Options{Title: "End-to-end"}))
	// Output:
	// digraph G {
	//   rankdir=LR;
	//   bgcolor="transparent";
	//   label="End-to-end";
	//   labelloc=t;
	//   node [shape=box, style="rounded,filled", fillcolor=white, fontsize=14, margin="0.2,0.1"];
	//   edge [fontsize=10, fontcolor="#64748b"];
	//
	//   "dev" [label="Developer"];
	//   "vpn" [label="Tailscale VPN"];
	//
	//   "dev" -> "vpn";
	// }
}
