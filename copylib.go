package main

import (
	"fmt"
	"strings"
)

// sectionCopy holds the curated paragraph per (canonical slug, canonical
// heading). Curating the copy here keeps generated posts from repeating
// the same filler sentence under every heading.
var sectionCopy = map[string]map[string]string{
	"inbox-zero-classifier": {
		"Introduction":             "Classify by sender/subject, label important items, and auto-archive low-value mail so your inbox stays focused.",
		"Why automate Inbox Zero":  "Automation prevents distractions and keeps your attention on action-able messages instead of newsletters and alerts.",
		"How the classifier works": "Apps Script scans recent threads, applies labels (Action, Read Later, Notifications), and archives newsletters automatically.",
		"Starter rules & labels":   "Begin with obvious patterns (alerts, newsletters). Whitelist key senders. Iterate rules weekly based on misses.",
		"Scheduling & maintenance": "Run every 10–15 minutes on a time trigger. Review label counts and maintain a changelog of changes.",
		"Results & pitfalls":       "Expect 60–80% faster triage. Watch for over-aggressive archiving and misclassified alerts, and tune rules accordingly.",
	},
	"onboarding": {
		"The problem with manual onboarding": "Steps are spread across Admin, Groups and Gmail; it’s slow, inconsistent, and easy to miss key access.",
		"Why Apps Script + Admin SDK":        "Native to Workspace, secure via OAuth, fast to deploy, and easy to maintain with a Google Sheet as the source of truth.",
		"What this automation does":          "Creates users, assigns org units, adds mandatory groups, and applies Gmail defaults in a single, repeatable flow.",
		"Script outline":                     "Use AdminDirectory.Users.insert and AdminDirectory.Members.insert. Read rows from a Sheet and validate inputs.",
		"Common pitfalls":                    "Missing Admin SDK scopes, bad orgUnitPath (must start with '/'), and misspelled group addresses. Start with dry runs.",
		"Results":                            "Typically a 70–80% time reduction and far fewer access mistakes; scales well for MSPs and internal IT teams.",
	},
	"offboarding": {
		"Risks of manual offboarding": "Delays leave access open; automation ensures immediate lock-down and consistent data handling.",
		"Suspend & secure":            "Suspend the user, reset sign-in cookies, and revoke tokens to cut off access right away.",
		"Drive transfer":              "Transfer ownership to a manager or service account; verify shared drives and quotas before deletion.",
		"Groups & aliases cleanup":    "Remove the account from groups, shared inboxes, and aliases; document any residual access that needs attention.",
		"Archive & retention policy":  "Apply consistent retention/legal hold policies prior to deletion to meet compliance requirements.",
	},
}

// sectionText returns the body copy for one section of a post. Curated
// copy wins; otherwise a generic sentence built from the heading, so a
// section never renders empty.
func sectionText(slug, heading string) string {
	lib := sectionCopy[canonicalSlug(slug)]
	if text, ok := lib[canonicalHeading(heading)]; ok {
		return text
	}
	return fmt.Sprintf("This section covers %s with practical steps and pitfalls to avoid.", strings.ToLower(heading))
}
