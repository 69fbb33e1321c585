package buildsys

// Job is one validated, ready-to-run compile unit derived from a program
// record. SourceFiles only contains paths that existed at validation time,
// in the order they were listed.
type Job struct {
	Program     string   `json:"program" yaml:"program"`
	SourceFiles []string `json:"sourceFiles" yaml:"sourceFiles"`
	BinDir      string   `json:"binDir" yaml:"binDir"`
	OutputPath  string   `json:"outputPath" yaml:"outputPath"`
	Options     string   `json:"options,omitempty" yaml:"options,omitempty"`
}

// RunOptions adjust how compile commands are built and executed.
type RunOptions struct {
	// DryRun logs each compile command without spawning the compiler.
	DryRun bool
	// SplitOptions passes the option tokens as separate compiler arguments
	// instead of the single space-joined string.
	SplitOptions bool
	// KeepGoing builds the remaining programs after a failed compile and
	// reports the first failure at the end of the run.
	KeepGoing bool
}
