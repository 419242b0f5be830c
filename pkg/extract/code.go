package extract

import (
	"encoding/json"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/conclave-ai/conclave/pkg/models"
)

// Artifact is one extracted file with its attribution.
type Artifact struct {
	Filename    string
	Language    string
	Content     string
	SourceAgent string
}

var (
	fencedBlockRe = regexp.MustCompile("(?s)```([a-zA-Z0-9_+-]*)[ \t]*\n(.*?)\n?```")
	pathTokenRe   = regexp.MustCompile(`(?:[A-Za-z0-9_.-]+/)+[A-Za-z0-9_.-]+\.[A-Za-z0-9]+`)

	hintFilenameRe = regexp.MustCompile(`(?i)^#*\s*file(?:name)?\s*:\s*(\S+)`)
	hintSaveAsRe   = regexp.MustCompile("(?i)save (?:it )?as `?([^`\\s]+)`?")
	hintHeadingRe  = regexp.MustCompile(`^#{1,6}\s+(\S+)\s*$`)
	hintBoldRe     = regexp.MustCompile(`^\*\*([^*]+)\*\*\s*$`)

	pyClassRe = regexp.MustCompile(`(?m)^\s*class\s+([A-Za-z_][A-Za-z0-9_]*)`)
	pyDefRe   = regexp.MustCompile(`(?m)^\s*def\s+([a-z_][A-Za-z0-9_]*)\s*\(`)
	jsExportRe = regexp.MustCompile(`(?m)^\s*export\s+(?:default\s+)?(?:class|function)\s+([A-Za-z_$][A-Za-z0-9_$]*)`)
)

// languageExtensions maps fence languages to file extensions.
var languageExtensions = map[string]string{
	"python":     "py",
	"py":         "py",
	"javascript": "js",
	"js":         "js",
	"typescript": "ts",
	"ts":         "ts",
	"go":         "go",
	"golang":     "go",
	"rust":       "rs",
	"java":       "java",
	"c":          "c",
	"cpp":        "cpp",
	"c++":        "cpp",
	"csharp":     "cs",
	"ruby":       "rb",
	"shell":      "sh",
	"bash":       "sh",
	"sh":         "sh",
	"sql":        "sql",
	"html":       "html",
	"css":        "css",
	"json":       "json",
	"yaml":       "yaml",
	"yml":        "yaml",
	"toml":       "toml",
	"markdown":   "md",
	"r":          "r",
	"julia":      "jl",
}

// manifestEntry accepts both manifest spellings: a bare array of
// {path,language,code} objects and a {"files":[{path,language,content}]}
// wrapper.
type manifestEntry struct {
	Path     string `json:"path"`
	Language string `json:"language"`
	Code     string `json:"code"`
	Content  string `json:"content"`
}

type manifestWrapper struct {
	Files []manifestEntry `json:"files"`
}

// Artifacts extracts the file tree from the ordered assistant messages
// of a completed meeting. JSON manifests take priority over fenced
// blocks; with no manifest present, fenced blocks are named by hint,
// transcript path token, content inference, then a numbered fallback.
// The result is idempotent for an unchanged transcript: later files
// with the same name replace earlier ones.
func Artifacts(messages []models.Message) []Artifact {
	assistant := make([]models.Message, 0, len(messages))
	for _, m := range messages {
		if m.Role == models.RoleAssistant {
			assistant = append(assistant, m)
		}
	}

	if artifacts := manifestArtifacts(assistant); len(artifacts) > 0 {
		return dedupe(artifacts)
	}
	return dedupe(fencedArtifacts(assistant))
}

// manifestArtifacts collects artifacts from JSON manifests in fenced
// blocks across all assistant messages.
func manifestArtifacts(messages []models.Message) []Artifact {
	var artifacts []Artifact
	for _, msg := range messages {
		for _, match := range fencedBlockRe.FindAllStringSubmatch(msg.Content, -1) {
			entries, ok := parseManifest(match[2])
			if !ok {
				continue
			}
			for _, e := range entries {
				content := e.Code
				if content == "" {
					content = e.Content
				}
				if e.Path == "" || content == "" {
					continue
				}
				filename := e.Path
				if path.Ext(filename) == "" {
					if ext := extensionFor(e.Language); ext != "" {
						filename += "." + ext
					}
				}
				artifacts = append(artifacts, Artifact{
					Filename:    filename,
					Language:    normalizeLanguage(e.Language),
					Content:     content,
					SourceAgent: msg.AgentName,
				})
			}
		}
	}
	return artifacts
}

func parseManifest(body string) ([]manifestEntry, bool) {
	body = strings.TrimSpace(body)
	if strings.HasPrefix(body, "[") {
		var entries []manifestEntry
		if json.Unmarshal([]byte(body), &entries) == nil && len(entries) > 0 && entries[0].Path != "" {
			return entries, true
		}
		return nil, false
	}
	if strings.HasPrefix(body, "{") {
		var wrapper manifestWrapper
		if json.Unmarshal([]byte(body), &wrapper) == nil && len(wrapper.Files) > 0 {
			return wrapper.Files, true
		}
	}
	return nil, false
}

// fencedBlock is one code block awaiting a filename.
type fencedBlock struct {
	language    string
	content     string
	sourceAgent string
	filename    string
}

// fencedArtifacts walks fenced blocks and resolves their filenames.
func fencedArtifacts(messages []models.Message) []Artifact {
	var blocks []*fencedBlock
	var transcript strings.Builder

	for _, msg := range messages {
		transcript.WriteString(msg.Content)
		transcript.WriteString("\n")

		lines := strings.Split(msg.Content, "\n")
		for _, loc := range fencedBlockRe.FindAllStringSubmatchIndex(msg.Content, -1) {
			lang := msg.Content[loc[2]:loc[3]]
			body := msg.Content[loc[4]:loc[5]]
			block := &fencedBlock{
				language:    normalizeLanguage(lang),
				content:     body,
				sourceAgent: msg.AgentName,
			}
			block.filename = hintFilename(lines, lineIndexAt(msg.Content, loc[0]))
			blocks = append(blocks, block)
		}
	}

	// Second pass: assign transcript path tokens to unnamed blocks in
	// encounter order, then fall back to content inference and numbered
	// names.
	tokens := unclaimedPathTokens(transcript.String(), blocks)
	tokenIdx := 0
	for i, block := range blocks {
		if block.filename != "" {
			continue
		}
		if tokenIdx < len(tokens) {
			block.filename = tokens[tokenIdx]
			tokenIdx++
			continue
		}
		if name := inferFilename(block.language, block.content); name != "" {
			block.filename = name
			continue
		}
		ext := extensionFor(block.language)
		if ext == "" {
			ext = "txt"
		}
		block.filename = numberedName(i+1, ext)
	}

	artifacts := make([]Artifact, 0, len(blocks))
	for _, block := range blocks {
		artifacts = append(artifacts, Artifact{
			Filename:    block.filename,
			Language:    block.language,
			Content:     block.content,
			SourceAgent: block.sourceAgent,
		})
	}
	return artifacts
}

func numberedName(n int, ext string) string {
	return "code_" + strconv.Itoa(n) + "." + ext
}

// lineIndexAt returns the zero-based line number containing byte offset.
func lineIndexAt(text string, offset int) int {
	return strings.Count(text[:offset], "\n")
}

// hintFilename inspects up to five lines above the fence for a filepath
// hint. Hints without a dot are ignored.
func hintFilename(lines []string, fenceLine int) string {
	start := fenceLine - 5
	if start < 0 {
		start = 0
	}
	// Nearest hint wins, so scan upward from the fence.
	for i := fenceLine - 1; i >= start; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		for _, re := range []*regexp.Regexp{hintFilenameRe, hintSaveAsRe, hintHeadingRe, hintBoldRe} {
			if m := re.FindStringSubmatch(line); m != nil {
				candidate := strings.Trim(m[1], "`\"'")
				if strings.Contains(candidate, ".") {
					return candidate
				}
			}
		}
	}
	return ""
}

// unclaimedPathTokens returns path-like tokens from the transcript in
// encounter order, skipping ones already claimed as hints.
func unclaimedPathTokens(transcript string, blocks []*fencedBlock) []string {
	claimed := make(map[string]struct{})
	for _, block := range blocks {
		if block.filename != "" {
			claimed[block.filename] = struct{}{}
		}
	}
	var tokens []string
	seen := make(map[string]struct{})
	for _, token := range pathTokenRe.FindAllString(transcript, -1) {
		if _, ok := claimed[token]; ok {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		tokens = append(tokens, token)
	}
	return tokens
}

// inferFilename derives a name from the block's top-level declarations.
func inferFilename(language, content string) string {
	switch language {
	case "python":
		if m := pyClassRe.FindStringSubmatch(content); m != nil {
			return camelToSnake(m[1]) + ".py"
		}
		if m := pyDefRe.FindStringSubmatch(content); m != nil {
			return m[1] + ".py"
		}
	case "javascript", "typescript":
		if m := jsExportRe.FindStringSubmatch(content); m != nil {
			ext := "js"
			if language == "typescript" {
				ext = "ts"
			}
			return camelToSnake(m[1]) + "." + ext
		}
	}
	return ""
}

func camelToSnake(name string) string {
	var sb strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				sb.WriteByte('_')
			}
			sb.WriteRune(unicode.ToLower(r))
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func normalizeLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	switch lang {
	case "py":
		return "python"
	case "js":
		return "javascript"
	case "ts":
		return "typescript"
	case "golang":
		return "go"
	}
	return lang
}

func extensionFor(language string) string {
	return languageExtensions[strings.ToLower(strings.TrimSpace(language))]
}

// dedupe keeps one artifact per filename. The latest content wins while
// the position of first appearance is preserved.
func dedupe(artifacts []Artifact) []Artifact {
	index := make(map[string]int)
	var out []Artifact
	for _, a := range artifacts {
		if i, ok := index[a.Filename]; ok {
			out[i] = a
			continue
		}
		index[a.Filename] = len(out)
		out = append(out, a)
	}
	return out
}

// pythonStdlib is the closed standard-library set filtered out of
// requirements generation.
var pythonStdlib = map[string]struct{}{
	"abc": {}, "argparse": {}, "asyncio": {}, "base64": {}, "collections": {},
	"contextlib": {}, "copy": {}, "csv": {}, "dataclasses": {}, "datetime": {},
	"decimal": {}, "enum": {}, "functools": {}, "glob": {}, "hashlib": {},
	"heapq": {}, "html": {}, "http": {}, "io": {}, "itertools": {},
	"json": {}, "logging": {}, "math": {}, "multiprocessing": {}, "os": {},
	"pathlib": {}, "pickle": {}, "queue": {}, "random": {}, "re": {},
	"shutil": {}, "signal": {}, "socket": {}, "sqlite3": {}, "statistics": {},
	"string": {}, "struct": {}, "subprocess": {}, "sys": {}, "tempfile": {},
	"threading": {}, "time": {}, "traceback": {}, "types": {}, "typing": {},
	"unittest": {}, "urllib": {}, "uuid": {}, "warnings": {}, "xml": {},
	"zipfile": {},
}

// pypiAliases maps import names to their PyPI package names.
var pypiAliases = map[string]string{
	"np":      "numpy",
	"pd":      "pandas",
	"plt":     "matplotlib",
	"sklearn": "scikit-learn",
	"cv2":     "opencv-python",
	"PIL":     "Pillow",
	"yaml":    "PyYAML",
	"bs4":     "beautifulsoup4",
	"dotenv":  "python-dotenv",
}

var pyImportRe = regexp.MustCompile(`(?m)^\s*(?:import|from)\s+([A-Za-z_][A-Za-z0-9_]*)`)

// GenerateRequirements scans Python artifacts for third-party imports
// and returns sorted unique requirement lines. An empty result means no
// requirements file should be produced.
func GenerateRequirements(artifacts []Artifact) []string {
	seen := make(map[string]struct{})
	for _, a := range artifacts {
		if a.Language != "python" && !strings.HasSuffix(a.Filename, ".py") {
			continue
		}
		for _, m := range pyImportRe.FindAllStringSubmatch(a.Content, -1) {
			name := m[1]
			if _, std := pythonStdlib[name]; std {
				continue
			}
			if alias, ok := pypiAliases[name]; ok {
				name = alias
			}
			seen[name] = struct{}{}
		}
	}
	reqs := make([]string, 0, len(seen))
	for name := range seen {
		reqs = append(reqs, name)
	}
	sort.Strings(reqs)
	return reqs
}
