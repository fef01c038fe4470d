package api

// MismatchV1 is one regression case whose computed shape differs from the expected one.
type MismatchV1 struct {
	Line      int    `json:"line" yaml:"line"`
	Structure string `json:"structure" yaml:"structure"`
	Got       string `json:"got" yaml:"got"`
	Want      string `json:"want" yaml:"want"`
}

// BenchReportV1 is the stable schema of a regression run.
type BenchReportV1 struct {
	RunID        string       `json:"run_id" yaml:"run_id"`
	Source       string       `json:"source,omitempty" yaml:"source,omitempty"`
	Cases        int          `json:"cases" yaml:"cases"`
	Passed       int          `json:"passed" yaml:"passed"`
	FailedLevel5 int          `json:"failed_level5" yaml:"failed_level5"`
	FailedLevel3 int          `json:"failed_level3" yaml:"failed_level3"`
	FailedLevel1 int          `json:"failed_level1" yaml:"failed_level1"`
	Invalid      int          `json:"invalid" yaml:"invalid"`
	SuccessRatio float64      `json:"success_ratio" yaml:"success_ratio"`
	ElapsedMS    int64        `json:"elapsed_ms" yaml:"elapsed_ms"`
	Level5       []MismatchV1 `json:"level5_mismatches,omitempty" yaml:"level5_mismatches,omitempty"`
	Level3       []MismatchV1 `json:"level3_mismatches,omitempty" yaml:"level3_mismatches,omitempty"`
	Level1       []MismatchV1 `json:"level1_mismatches,omitempty" yaml:"level1_mismatches,omitempty"`
	InvalidCases []MismatchV1 `json:"invalid_cases,omitempty" yaml:"invalid_cases,omitempty"`
}
