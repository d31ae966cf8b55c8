package models

// ImportOptions tune a CSV import run.
type ImportOptions struct {
	// DropExisting clears banks and countries before importing.
	DropExisting bool
}

// ImportSummary reports what an import run stored.
type ImportSummary struct {
	Countries      int `json:"countries"`
	Headquarters   int `json:"headquarters"`
	Branches       int `json:"branches"`
	OrphanBranches int `json:"orphanBranches"`
	SkippedRows    int `json:"skippedRows"`
}
