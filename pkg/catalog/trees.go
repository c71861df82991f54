package catalog

import (
	"github.com/kunhq/kundocs/pkg/diagram"
	"github.com/kunhq/kundocs/pkg/diagram/tree"
)

func treeDoc(id, title, titleAr string, root tree.Node) diagram.Document {
	return diagram.Document{
		ID:     id,
		Kind:   diagram.KindTree,
		Title:  title,
		Titles: map[string]string{"ar": titleAr},
		Tree:   &root,
	}
}

func directoryStructure() diagram.Document {
	return treeDoc("directory-structure", "Project Layout", "هيكل المشروع",
		tree.Branch("kun/", "Remote AI Development Infrastructure",
			tree.Branch("scripts/", "Setup and maintenance scripts",
				tree.Branch("phase1/", "Individual developer setup"),
				tree.Branch("phase2/", "Team server setup"),
				tree.Branch("phase3/", "Commercial platform setup"),
				tree.Branch("monitoring/", "Health check scripts"),
			),
			tree.Branch("config/", "Configuration templates",
				tree.Branch("tailscale/", "Tailscale ACL configs"),
				tree.Branch("tmux/", "tmux session configs"),
			),
			tree.Branch("docker/", "Container configurations",
				tree.Leaf("Dockerfile", "Development container"),
				tree.Leaf("docker-compose.yml", "Multi-container setup"),
			),
			tree.Branch("docs/", "Project documentation",
				tree.Leaf("PROJECT-BRIEF.md", "Vision and goals"),
				tree.Leaf("ARCHITECTURE.md", "System design"),
				tree.Leaf("PRD.md", "Requirements"),
				tree.Leaf("EPICS.md", "User stories"),
			),
			tree.Branch("src/", "Next.js documentation site",
				tree.Branch("app/", "App Router pages"),
				tree.Branch("components/", "React components"),
			),
		),
	)
}

func phaseStructure() diagram.Document {
	return treeDoc("structure", "Three-phase Architecture", "بنية المراحل الثلاث",
		tree.Branch("kun/", "Three-phase architecture",
			tree.Branch("Phase 1: Individual", "Personal remote setup",
				tree.Leaf("tailscale up --ssh", "VPN with SSH"),
				tree.Leaf("tmux new-session", "Persistent sessions"),
				tree.Leaf("termius", "Mobile access"),
				tree.Leaf("claude-code", "AI CLI"),
			),
			tree.Branch("Phase 2: Team Server", "10+ developers",
				tree.Leaf("multi-user accounts", "User management"),
				tree.Leaf("tailscale ACLs", "Access control"),
				tree.Leaf("/etc/claude-code/", "Shared config"),
				tree.Leaf("systemd services", "Auto-start"),
				tree.Leaf("netdata", "Monitoring"),
			),
			tree.Branch("Phase 3: Commercial", "Rental platform",
				tree.Leaf("docker isolation", "Container per user"),
				tree.Leaf("usage metering", "Track resources"),
				tree.Leaf("stripe billing", "Payments"),
				tree.Leaf("pattern marketplace", "Sell patterns"),
			),
		),
	)
}

func prismaStructure() diagram.Document {
	return treeDoc("prisma-structure", "Database Schema", "مخطط قاعدة البيانات",
		tree.Branch("prisma/", "Database schema and migrations",
			tree.Leaf("schema.prisma", "Main config with datasource and generator"),
			tree.Branch("models/", "Schema files organized by domain",
				tree.Leaf("auth.prisma", "User, Account, tokens"),
				tree.Leaf("config.prisma", "Application settings"),
			),
			tree.Branch("migrations/", "Auto-generated migration files"),
			tree.Leaf("seed.ts", "Database seeding script"),
		),
	)
}
