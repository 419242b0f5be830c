package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conclave-ai/conclave/pkg/models"
)

func assistantMsg(agent, content string) models.Message {
	return models.Message{Role: models.RoleAssistant, AgentName: agent, Content: content}
}

func TestArtifacts_FilenameHint(t *testing.T) {
	messages := []models.Message{
		assistantMsg("Engineer", "Here is the implementation.\n\n# filename: src/app.py\n```python\nprint('hello')\n```"),
	}

	artifacts := Artifacts(messages)
	require.Len(t, artifacts, 1)
	assert.Equal(t, "src/app.py", artifacts[0].Filename)
	assert.Equal(t, "python", artifacts[0].Language)
	assert.Equal(t, "print('hello')", artifacts[0].Content)
	assert.Equal(t, "Engineer", artifacts[0].SourceAgent)
}

func TestArtifacts_HintVariants(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"file colon", "File: main.py\n```python\nx = 1\n```", "main.py"},
		{"save as", "Save as `util.py`\n```python\nx = 1\n```", "util.py"},
		{"heading", "### config.yaml\n```yaml\nkey: v\n```", "config.yaml"},
		{"bold", "**setup.py**\n```python\nx = 1\n```", "setup.py"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			artifacts := Artifacts([]models.Message{assistantMsg("A", tt.content)})
			require.Len(t, artifacts, 1)
			assert.Equal(t, tt.want, artifacts[0].Filename)
		})
	}
}

func TestArtifacts_HintWithoutDotIgnored(t *testing.T) {
	artifacts := Artifacts([]models.Message{
		assistantMsg("A", "### Overview\n```python\nclass DataLoader:\n    pass\n```"),
	})
	require.Len(t, artifacts, 1)
	// Falls through to content inference.
	assert.Equal(t, "data_loader.py", artifacts[0].Filename)
}

func TestArtifacts_JSONManifestTakesPriority(t *testing.T) {
	manifest := "```json\n[{\"path\": \"src/model\", \"language\": \"python\", \"code\": \"x = 1\"}," +
		"{\"path\": \"src/train.py\", \"language\": \"python\", \"code\": \"y = 2\"}]\n```"
	messages := []models.Message{
		assistantMsg("Lead", manifest),
		assistantMsg("Engineer", "```python\nz = 3\n```"),
	}

	artifacts := Artifacts(messages)
	require.Len(t, artifacts, 2)
	// Extension appended from language when the path lacks one.
	assert.Equal(t, "src/model.py", artifacts[0].Filename)
	assert.Equal(t, "x = 1", artifacts[0].Content)
	assert.Equal(t, "Lead", artifacts[0].SourceAgent)
	assert.Equal(t, "src/train.py", artifacts[1].Filename)
}

func TestArtifacts_ManifestFilesWrapper(t *testing.T) {
	manifest := "```json\n{\"files\": [{\"path\": \"app/main.go\", \"language\": \"go\", \"content\": \"package main\"}]}\n```"
	artifacts := Artifacts([]models.Message{assistantMsg("Lead", manifest)})
	require.Len(t, artifacts, 1)
	assert.Equal(t, "app/main.go", artifacts[0].Filename)
	assert.Equal(t, "package main", artifacts[0].Content)
}

func TestArtifacts_PathTokenAssignment(t *testing.T) {
	messages := []models.Message{
		assistantMsg("Engineer", "We should create src/parser.py and src/lexer.py.\n\n"+
			"```python\nPARSE = 1\n```\n\n```python\nLEX = 2\n```"),
	}

	artifacts := Artifacts(messages)
	require.Len(t, artifacts, 2)
	assert.Equal(t, "src/parser.py", artifacts[0].Filename)
	assert.Equal(t, "src/lexer.py", artifacts[1].Filename)
}

func TestArtifacts_ContentInference(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"python class camel case", "```python\nclass HttpServer:\n    pass\n```", "http_server.py"},
		{"python def", "```python\ndef tokenize(text):\n    pass\n```", "tokenize.py"},
		{"js export class", "```javascript\nexport default class Router {}\n```", "router.js"},
		{"ts export function", "```typescript\nexport function parseConfig() {}\n```", "parse_config.ts"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			artifacts := Artifacts([]models.Message{assistantMsg("A", tt.content)})
			require.Len(t, artifacts, 1)
			assert.Equal(t, tt.want, artifacts[0].Filename)
		})
	}
}

func TestArtifacts_NumberedFallback(t *testing.T) {
	artifacts := Artifacts([]models.Message{
		assistantMsg("A", "```python\nX = 1\n```"),
	})
	require.Len(t, artifacts, 1)
	assert.Equal(t, "code_1.py", artifacts[0].Filename)
}

func TestArtifacts_DuplicateFilenameLatestWins(t *testing.T) {
	messages := []models.Message{
		assistantMsg("A", "# filename: app.py\n```python\nversion = 1\n```"),
		assistantMsg("B", "# filename: app.py\n```python\nversion = 2\n```"),
	}

	artifacts := Artifacts(messages)
	require.Len(t, artifacts, 1)
	assert.Equal(t, "version = 2", artifacts[0].Content)
	assert.Equal(t, "B", artifacts[0].SourceAgent)
}

func TestArtifacts_IgnoresNonAssistantMessages(t *testing.T) {
	artifacts := Artifacts([]models.Message{
		{Role: models.RoleUser, Content: "# filename: user.py\n```python\nx = 1\n```"},
	})
	assert.Empty(t, artifacts)
}

func TestArtifacts_Idempotent(t *testing.T) {
	messages := []models.Message{
		assistantMsg("A", "# filename: src/app.py\n```python\nprint('hi')\n```"),
	}
	assert.Equal(t, Artifacts(messages), Artifacts(messages))
}

func TestGenerateRequirements(t *testing.T) {
	artifacts := []Artifact{
		{Filename: "app.py", Language: "python", Content: "import numpy\nimport os\nfrom sklearn import svm\nimport cv2\n"},
		{Filename: "util.py", Language: "python", Content: "import numpy\nimport json\n"},
	}

	reqs := GenerateRequirements(artifacts)
	assert.Equal(t, []string{"numpy", "opencv-python", "scikit-learn"}, reqs)
}

func TestGenerateRequirements_StdlibOnlyIsEmpty(t *testing.T) {
	artifacts := []Artifact{
		{Filename: "app.py", Language: "python", Content: "import os\nimport sys\nfrom pathlib import Path\n"},
	}
	assert.Empty(t, GenerateRequirements(artifacts))
}

func TestGenerateRequirements_IgnoresNonPython(t *testing.T) {
	artifacts := []Artifact{
		{Filename: "main.go", Language: "go", Content: "import \"fmt\""},
	}
	assert.Empty(t, GenerateRequirements(artifacts))
}
