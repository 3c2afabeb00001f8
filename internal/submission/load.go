package submission

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	yaml "gopkg.in/yaml.v2"

	"github.com/mlworkbench/jobctl/pkg/client/domain"
)

const (
	// ConfigFileName is the conventional name of the job configuration document.
	ConfigFileName = "jobs_config.yaml"

	configSubDir = "config"
)

// Loader finds and parses the job configuration document for a base directory.
type Loader struct {
	Fs afero.Fs
}

func NewLoader() *Loader {
	return &Loader{Fs: afero.NewOsFs()}
}

// candidatePaths returns the locations probed for the configuration document,
// in order: the base directory itself, its config/ subdirectory, and the
// parent's config/ directory (for runs started from inside a template tree).
func (l *Loader) candidatePaths(baseDir string) []string {
	return []string{
		filepath.Join(baseDir, ConfigFileName),
		filepath.Join(baseDir, configSubDir, ConfigFileName),
		filepath.Join(baseDir, "..", configSubDir, ConfigFileName),
	}
}

// Load reads the first configuration document found and returns its job set in
// declared order. The returned path reports which candidate was used.
func (l *Loader) Load(baseDir string) (*domain.JobSet, string, error) {
	candidates := l.candidatePaths(baseDir)

	var configPath string
	for _, path := range candidates {
		if _, err := l.Fs.Stat(path); err == nil {
			configPath = path
			break
		} else if !os.IsNotExist(err) {
			return nil, "", &ConfigParseError{Path: path, Err: err}
		}
	}
	if configPath == "" {
		return nil, "", &ConfigNotFoundError{Attempted: candidates}
	}

	data, err := afero.ReadFile(l.Fs, configPath)
	if err != nil {
		return nil, "", &ConfigParseError{Path: configPath, Err: err}
	}
	jobs, err := ParseJobs(data, configPath)
	if err != nil {
		return nil, "", err
	}
	return jobs, configPath, nil
}

// ParseJobs parses a job configuration document. The path is only used in
// error messages.
func ParseJobs(data []byte, path string) (*domain.JobSet, error) {
	file := &domain.JobsFile{}
	if err := yaml.Unmarshal(data, file); err != nil {
		return nil, &ConfigParseError{Path: path, Err: err}
	}
	if file.Jobs == nil || file.Jobs.Len() == 0 {
		return nil, &ConfigParseError{Path: path, Err: errNoJobs}
	}
	return file.Jobs, nil
}

var errNoJobs = errors.New("document has no top-level 'jobs' collection, or it is empty")
