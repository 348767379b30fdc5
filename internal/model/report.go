package model

// ManifestVersion is the current manifest schema version.
const ManifestVersion = 1

// Entry describes one embedded file.
type Entry struct {
	Path       Path     `yaml:"path"`
	Namespace  []string `yaml:"namespace,flow"`
	Identifier string   `yaml:"identifier"`
	Size       int64    `yaml:"size"`
	SHA256     string   `yaml:"sha256,omitempty"`
}

// Qualified returns the namespace-qualified identifier below the generated
// root namespaces.
func (e Entry) Qualified() string {
	return QualifiedName(e.Namespace, e.Identifier)
}

// ArtifactPair names the two generated translation units of one run.
type ArtifactPair struct {
	Declarations Path `yaml:"declarations"`
	Definitions  Path `yaml:"definitions"`
}

// Manifest is the inventory written next to a generated artifact pair.
type Manifest struct {
	Version   int          `yaml:"version"`
	Input     Path         `yaml:"input"`
	Namespace string       `yaml:"namespace"`
	Artifacts ArtifactPair `yaml:"artifacts"`
	Entries   []Entry      `yaml:"entries"`
}

// Summary is the outcome of a successful embedding run.
type Summary struct {
	Artifacts   ArtifactPair
	Files       int
	Directories int
	Bytes       int64
	Entries     []Entry
}

// FileDiff is the unified diff between a generated file on disk and what a
// run would write.
type FileDiff struct {
	Path    Path
	Exists  bool
	Changed bool
	Unified string
}

// DiffResult holds the diffs for both artifacts.
type DiffResult struct {
	Files []FileDiff
}

// Changed reports whether any artifact differs.
func (r DiffResult) Changed() bool {
	for _, f := range r.Files {
		if f.Changed {
			return true
		}
	}

	return false
}
