package catalog

import (
	"github.com/kunhq/kundocs/pkg/diagram"
	"github.com/kunhq/kundocs/pkg/diagram/flow"
	"github.com/kunhq/kundocs/pkg/diagram/icon"
)

func flowDoc(id, title, titleAr string, large, showIcons bool, nodes []flow.Node, edges []flow.Edge) diagram.Document {
	return diagram.Document{
		ID:        id,
		Kind:      diagram.KindFlow,
		Title:     title,
		Titles:    map[string]string{"ar": titleAr},
		Large:     large,
		ShowIcons: diagram.Bool(showIcons),
		Flow:      &flow.Chart{Nodes: nodes, Edges: edges},
	}
}

func phase1Flow() diagram.Document {
	return flowDoc("phase1-flow", "Phase 1: Individual Setup", "المرحلة 1: الإعداد الفردي", true, true,
		[]flow.Node{
			{ID: "install", Label: "Install Tailscale", Icon: icon.Cloud},
			{ID: "ssh", Label: "Enable SSH", Icon: icon.Shield},
			{ID: "tmux", Label: "Start tmux", Icon: icon.Terminal},
			{ID: "claude", Label: "Run Claude Code", Icon: icon.Terminal},
			{ID: "mobile", Label: "Connect from Mobile", Icon: icon.Users},
		},
		[]flow.Edge{
			{From: "install", To: "ssh", Note: "tailscale up --ssh"},
			{From: "ssh", To: "tmux", Note: "tmux new-session"},
			{From: "tmux", To: "claude", Note: "claude"},
			{From: "mobile", To: "tmux", Note: "Termius SSH"},
		},
	)
}

func phase2Flow() diagram.Document {
	return flowDoc("phase2-flow", "Phase 2: Team Server", "المرحلة 2: خادم الفريق", true, true,
		[]flow.Node{
			{ID: "server", Label: "Ubuntu Server", Icon: icon.Server},
			{ID: "users", Label: "Create Users", Icon: icon.Users},
			{ID: "tailscale", Label: "Tailscale ACLs", Icon: icon.Shield},
			{ID: "config", Label: "Shared Config", Icon: icon.Globe},
			{ID: "systemd", Label: "Systemd Services", Icon: icon.Terminal},
			{ID: "monitor", Label: "Netdata", Icon: icon.Layers},
		},
		[]flow.Edge{
			{From: "server", To: "users", Note: "Multi-user accounts"},
			{From: "users", To: "tailscale", Note: "Access control"},
			{From: "tailscale", To: "config", Note: "/etc/claude-code/"},
			{From: "config", To: "systemd", Note: "Auto-start"},
			{From: "systemd", To: "monitor", Note: "Health checks"},
		},
	)
}

func phase3Flow() diagram.Document {
	return flowDoc("phase3-flow", "Phase 3: Commercial Platform", "المرحلة 3: المنصة التجارية", true, true,
		[]flow.Node{
			{ID: "docker", Label: "Docker Isolation", Icon: icon.Container},
			{ID: "meter", Label: "Usage Metering", Icon: icon.Layers},
			{ID: "billing", Label: "Stripe Billing", Icon: icon.CreditCard},
			{ID: "patterns", Label: "Pattern Marketplace", Icon: icon.Globe},
		},
		[]flow.Edge{
			{From: "docker", To: "meter", Note: "Container per user"},
			{From: "meter", To: "billing", Note: "Track resources"},
			{From: "billing", To: "patterns", Note: "Sell patterns"},
		},
	)
}

func endToEndFlow() diagram.Document {
	return flowDoc("end-to-end-flow", "End-to-end Development Flow", "مسار التطوير الكامل", false, false,
		[]flow.Node{
			{ID: "dev", Label: "Developer"},
			{ID: "tailscale", Label: "Tailscale VPN"},
			{ID: "server", Label: "Remote Server"},
			{ID: "tmux", Label: "tmux Session"},
			{ID: "claude", Label: "Claude Code"},
			{ID: "code", Label: "Generated Code"},
		},
		[]flow.Edge{
			{From: "dev", To: "tailscale"},
			{From: "tailscale", To: "server"},
			{From: "server", To: "tmux"},
			{From: "tmux", To: "claude"},
			{From: "claude", To: "code"},
		},
	)
}
