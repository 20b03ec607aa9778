// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package integrity scans the full vote collection for duplicate and
suspicious submissions.

Storage does not enforce one vote per (voter, award), so this package is
the reconciliation pass that catches what the submit-time check missed.
Every function is read-only and returns structured findings plus a plain
text summary. Nothing here removes or corrects votes; that is left to an
administrator.

# Checks

  - FindDuplicates: groups by (voter, award); DuplicateCount is the sum of
    group size minus one
  - AnalyzeDistribution: per roster member, total appearances, distinct
    awards, first-place count and average position
  - CheckImportIssues: voters with more votes than awards, a collection
    created entirely within a short window (DefaultBulkWindow), and exact
    (voter, award, ranking) repeats

Analyze runs all three:

	report := integrity.Analyze(cat, votes, integrity.Options{})
	if !report.Clean() {
		fmt.Print(report.Summary)
	}
*/
package integrity
