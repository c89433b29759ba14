package types

// MaterializeResult describes what a materialization wrote, or would write
// in dry-run mode.
type MaterializeResult struct {
	Template string `json:"template"`
	// Root is the project root as given by the caller, trimmed.
	Root string `json:"root"`
	// ResolvedRoot is the absolute form of Root.
	ResolvedRoot string `json:"resolvedRoot"`
	FilesWritten int    `json:"filesWritten"`
	// Paths holds the destination of every written file, in write order.
	Paths []string `json:"paths"`
	// Skipped holds relative names filtered out by include patterns.
	Skipped []string `json:"skipped,omitempty"`
	DryRun  bool     `json:"dryRun"`
}
