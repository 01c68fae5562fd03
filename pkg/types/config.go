package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero means no timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "faculty-kb/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// OutputFormat selects the serialization of the built document.
type OutputFormat string

const (
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// BuildConfig holds settings for the build stage.
type BuildConfig struct {
	// Input is the roster file (JSON, or YAML by extension).
	Input string `json:"input" yaml:"input"`

	// Output is the path of the knowledge-base document.
	Output string `json:"output" yaml:"output"`

	// Format selects json (default) or yaml.
	Format OutputFormat `json:"format" yaml:"format"`

	// LastUpdated overrides the roster's last_updated field.
	LastUpdated string `json:"last_updated,omitempty" yaml:"last_updated,omitempty"`

	// Source overrides the roster's source field.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	Contact Contact `json:"contact" yaml:"contact"`
}

// HubConfig holds settings for the Hugging Face Hub client.
type HubConfig struct {
	HTTPConfig `yaml:",inline"`

	// Endpoint is the Hub base URL (default https://huggingface.co).
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// Token is the access token sent as a bearer credential. Optional.
	Token string `json:"-" yaml:"-"`

	// RepoType is space, model, or dataset (default space).
	RepoType string `json:"repo_type" yaml:"repo_type"`

	// Revision is the branch to commit to (default main).
	Revision string `json:"revision" yaml:"revision"`
}

// UploadConfig holds settings for the upload stage.
type UploadConfig struct {
	// RepoID is the destination repository (e.g. "Ngum/alu-chatbot").
	RepoID string `json:"repo_id" yaml:"repo_id"`

	// PathInRepo is the destination path inside the repository.
	PathInRepo string `json:"path_in_repo" yaml:"path_in_repo"`

	// CommitMessage is the commit summary. Empty uses a message derived
	// from the roster size.
	CommitMessage string `json:"commit_message,omitempty" yaml:"commit_message,omitempty"`

	// LocalFile is where the document is written before upload.
	LocalFile string `json:"local_file" yaml:"local_file"`

	// KeepLocal keeps LocalFile after a successful upload.
	KeepLocal bool `json:"keep_local" yaml:"keep_local"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Build  BuildConfig  `json:"build" yaml:"build"`
	Hub    HubConfig    `json:"hub" yaml:"hub"`
	Upload UploadConfig `json:"upload" yaml:"upload"`
}
