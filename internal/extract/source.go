package extract

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-cheatsheet/catalog"
)

// Relative paths of the content documents, fixed under the content root.
const (
	ModulesFile     = "resources/learning_guide.md"
	CommandsFile    = "resources/command_cheatsheet.md"
	WorkflowsFile   = "examples/practical_workflows.md"
	ScenariosFile   = "quick-reference/scenario-cards.md"
	CaseStudiesFile = "examples/case_studies.md"
	ReconToolsFile  = "tools/recon_tools.md"
	CloudToolsFile  = "tools/cloud_enum_tools.md"
)

// DefaultRootCandidates is the ordered probe list used to locate the
// content root when no explicit directory is configured. The extra
// parent hops let test packages resolve the repository corpus.
var DefaultRootCandidates = []string{
	"content",
	"../content",
	"../../content",
	"../../../content",
}

// DocMeta is the optional YAML front matter a content document may
// carry. The extractors ignore it; it is kept as provenance so build
// logs can report which revision of a document was parsed.
type DocMeta struct {
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
	Version string `yaml:"version"`
	Updated string `yaml:"updated"`
}

// ResolveRoot probes the candidate directories in order and returns
// the first that exists. Content absence is a packaging defect, so a
// miss is an error rather than a silent fallback.
func ResolveRoot(candidates ...string) (string, error) {
	if len(candidates) == 0 {
		candidates = DefaultRootCandidates
	}
	for _, dir := range candidates {
		info, err := os.Stat(dir)
		if err == nil && info.IsDir() {
			return dir, nil
		}
	}
	return "", catalog.WrapRootError(fmt.Errorf("%w: tried %v", catalog.ErrContentRootNotFound, candidates))
}

// ReadDocument loads a content file relative to the root, strips any
// front matter, and returns the markdown body plus the parsed meta.
// A missing or unreadable file is fatal for the calling extractor.
func ReadDocument(root, rel string) (string, DocMeta, error) {
	path := filepath.Join(root, filepath.FromSlash(rel))
	data, err := os.ReadFile(path)
	if err != nil {
		return "", DocMeta{}, catalog.WrapReadError(fmt.Errorf("%w: %s: %v", catalog.ErrContentFileMissing, rel, err), rel)
	}

	var meta DocMeta
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		// Malformed front matter never blocks extraction; the raw
		// document is parsed as-is.
		return string(data), DocMeta{}, nil
	}
	return string(body), meta, nil
}
