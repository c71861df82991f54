package catalog

import (
	"github.com/kunhq/kundocs/pkg/diagram"
	"github.com/kunhq/kundocs/pkg/diagram/grid"
	"github.com/kunhq/kundocs/pkg/diagram/stepper"
)

func buildingBlocks() diagram.Document {
	return diagram.Document{
		ID:     "building-blocks",
		Kind:   diagram.KindGrid,
		Title:  "Kun Building Blocks",
		Titles: map[string]string{"ar": "المكونات الأساسية"},
		Sections: []grid.Section{
			{Title: "Network", Items: []string{"Tailscale", "WireGuard", "SSH"}},
			{Title: "Sessions", Items: []string{"tmux", "Persistent", "Attach"}},
			{Title: "AI", Items: []string{"Claude Code", "Patterns", "Codebase"}},
			{Title: "Mobile", Items: []string{"Termius", "iOS", "Android"}},
			{Title: "Users", Items: []string{"Multi-user", "ACLs", "Groups"}},
			{Title: "Config", Items: []string{"CLAUDE.md", "Secrets", "Env"}},
			{Title: "Monitoring", Items: []string{"Netdata", "Health", "Logs"}},
			{Title: "Commercial", Items: []string{"Docker", "Stripe", "Metering"}},
		},
	}
}

func stackedBlocks() diagram.Document {
	return diagram.Document{
		ID:     "stacked-blocks",
		Kind:   diagram.KindBlocks,
		Title:  "Kun Phases",
		Titles: map[string]string{"ar": "المراحل"},
		Blocks: []grid.Block{
			{Title: "Phase 1: Individual", Items: []string{"Tailscale VPN", "tmux sessions", "Mobile access via Termius"}},
			{Title: "Phase 2: Team", Items: []string{"Multi-user accounts", "Shared configuration", "Netdata monitoring"}},
			{Title: "Phase 3: Commercial", Items: []string{"Docker isolation", "Usage metering", "Stripe billing"}},
		},
	}
}

func phase1Setup() diagram.Document {
	return diagram.Document{
		ID:     "phase1-setup",
		Kind:   diagram.KindStepper,
		Title:  "Phase 1: Quick Start",
		Titles: map[string]string{"ar": "المرحلة 1: البدء السريع"},
		Steps: []stepper.Step{
			{Title: "Install Tailscale", Detail: "curl -fsSL https://tailscale.com/install.sh | sh"},
			{Title: "Enable SSH", Detail: "sudo tailscale up --ssh"},
			{Title: "Start tmux Session", Detail: "tmux new-session -d -s claude"},
			{Title: "Install Claude Code", Detail: "npm install -g @anthropic-ai/claude-code"},
			{Title: "Connect from Mobile", Detail: "Use Termius with Tailscale IP"},
		},
	}
}

func phase2Setup() diagram.Document {
	return diagram.Document{
		ID:     "phase2-setup",
		Kind:   diagram.KindStepper,
		Title:  "Phase 2: Team Server Setup",
		Titles: map[string]string{"ar": "المرحلة 2: إعداد خادم الفريق"},
		Steps: []stepper.Step{
			{Title: "Provision Ubuntu Server", Detail: "22.04 or 24.04 LTS"},
			{Title: "Create User Accounts", Detail: "useradd with proper groups"},
			{Title: "Configure Tailscale ACLs", Detail: "Access control per user"},
			{Title: "Setup Shared Config", Detail: "/etc/claude-code/CLAUDE.md"},
			{Title: "Enable Systemd Services", Detail: "Auto-start tmux sessions"},
			{Title: "Install Netdata", Detail: "Monitoring dashboard"},
		},
	}
}
