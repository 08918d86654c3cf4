package synth

import (
	"fmt"
	"strings"

	"github.com/agentsel-dev/agentsel/internal/project"
	"github.com/agentsel-dev/agentsel/internal/resolve"
)

// Prompt is one ready-to-use task prompt tied to a profile. Only prompts
// whose profile is active appear in the prompts artifact.
type Prompt struct {
	ProfileID string
	Title     string
	Text      string
}

// promptLibrary is the fixed prompt set. Order here is output order, which
// keeps the artifact deterministic.
var promptLibrary = []Prompt{
	{
		ProfileID: "frontend",
		Title:     "Build a page",
		Text:      "Create a new page following the project's component structure, styling conventions, and routing setup.",
	},
	{
		ProfileID: "design",
		Title:     "Review visual consistency",
		Text:      "Audit the current screens against the design guidelines and list concrete inconsistencies with fixes.",
	},
	{
		ProfileID: "backend",
		Title:     "Add an endpoint",
		Text:      "Implement a new API endpoint with request validation, error responses, and a matching integration test.",
	},
	{
		ProfileID: "api-design",
		Title:     "Design a resource",
		Text:      "Design the REST resource for this feature: routes, payloads, status codes, and versioning impact.",
	},
	{
		ProfileID: "supabase-backend",
		Title:     "Model data in Supabase",
		Text:      "Define the tables, row-level security policies, and typed client queries for this feature.",
	},
	{
		ProfileID: "firebase-backend",
		Title:     "Model data in Firestore",
		Text:      "Define the collection layout, security rules, and client SDK access patterns for this feature.",
	},
	{
		ProfileID: "aws-backend",
		Title:     "Provision AWS resources",
		Text:      "Specify the Lambda handlers, API Gateway routes, and IAM policies this feature requires.",
	},
	{
		ProfileID: "mobile",
		Title:     "Build a screen",
		Text:      "Create a new screen with navigation wiring, platform-appropriate layout, and loading/error states.",
	},
	{
		ProfileID: "flutter-mobile",
		Title:     "Compose a Flutter widget",
		Text:      "Build this feature as composable widgets with state management consistent with the rest of the app.",
	},
	{
		ProfileID: "react-native-mobile",
		Title:     "Build a React Native view",
		Text:      "Implement this feature as React Native components sharing logic with the existing hooks.",
	},
	{
		ProfileID: "auth",
		Title:     "Wire up authentication",
		Text:      "Add the sign-in, sign-out, and session-refresh flows, covering error and expiry edge cases.",
	},
	{
		ProfileID: "payments",
		Title:     "Integrate payments",
		Text:      "Implement the checkout flow with webhook handling, idempotent processing, and failure recovery.",
	},
	{
		ProfileID: "realtime",
		Title:     "Add live updates",
		Text:      "Stream changes for this feature with reconnection handling and stale-state reconciliation.",
	},
	{
		ProfileID: "testing",
		Title:     "Raise test coverage",
		Text:      "Identify the riskiest untested paths in this area and add focused unit and integration tests.",
	},
	{
		ProfileID: "documentation",
		Title:     "Document this feature",
		Text:      "Write user-facing and contributor-facing documentation for the feature just implemented.",
	},
	{
		ProfileID: "version-control",
		Title:     "Prepare the change",
		Text:      "Split the working tree into reviewable commits with messages describing intent, not mechanics.",
	},
}

// PromptsDocument assembles the prompts artifact: the fixed library
// filtered to prompts whose profile id is active.
func PromptsDocument(sel *resolve.Result, projectType project.Type) Artifact {
	var sb strings.Builder
	sb.WriteString("# Prompts\n\n")
	fmt.Fprintf(&sb, "Ready-to-use prompts for this %s project.\n", projectType)

	for _, p := range promptLibrary {
		if !sel.Contains(p.ProfileID) {
			continue
		}
		fmt.Fprintf(&sb, "\n## %s\n\n%s\n", p.Title, p.Text)
	}

	return Artifact{Name: PromptsDocName, Content: sb.String()}
}
