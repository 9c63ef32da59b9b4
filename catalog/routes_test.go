package catalog

import "testing"

func TestRoutesRelativeURLs(t *testing.T) {
	routes, err := NewRoutes("")
	if err != nil {
		t.Fatalf("new routes: %v", err)
	}

	cases := []struct {
		got  string
		want string
	}{
		{routes.ModuleURL(3), "/learn/module-3"},
		{routes.CommandsURL(""), "/commands"},
		{routes.CommandsURL("Amass"), "/commands#amass"},
		{routes.WorkflowURL("weekly-delta-scan"), "/workflows/weekly-delta-scan"},
		{routes.ScenarioURL("leaked-credentials"), "/scenarios/leaked-credentials"},
		{routes.CaseStudyURL("retail-chain"), "/case-studies/retail-chain"},
		{routes.ToolURL("amass"), "/tools/amass"},
		{routes.GuideURL("getting-started"), "/guides/getting-started"},
		{routes.SectionURL("learn"), "/learn"},
	}

	for _, tc := range cases {
		if tc.got != tc.want {
			t.Fatalf("url = %q, want %q", tc.got, tc.want)
		}
	}
}

func TestRoutesAbsoluteURLs(t *testing.T) {
	routes, err := NewRoutes("https://asm.example.com")
	if err != nil {
		t.Fatalf("new routes: %v", err)
	}
	if got := routes.ModuleURL(1); got != "https://asm.example.com/learn/module-1" {
		t.Fatalf("absolute module url = %q", got)
	}
	if got := routes.SectionURL("tools"); got != "https://asm.example.com/tools" {
		t.Fatalf("absolute section url = %q", got)
	}
}

func TestFallbackPathShapes(t *testing.T) {
	if got := fallbackPath(RouteWorkflow, "x"); got != "/workflows/x" {
		t.Fatalf("fallback workflow = %q", got)
	}
	if got := fallbackPath(RouteCommands, ""); got != "/commands" {
		t.Fatalf("fallback commands = %q", got)
	}
	if got := fallbackPath("unknown", "slug"); got != "/slug" {
		t.Fatalf("fallback default = %q", got)
	}
}
