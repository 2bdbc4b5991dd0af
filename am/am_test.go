package am

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/expertise/errors"
	"github.com/teranos/expertise/expertise"
)

func TestLoad_Defaults(t *testing.T) {
	// Isolated viper: no user or project files
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)

	assert.Equal(t, []string{"NOVICE", "EXPERT"}, cfg.Labels.Values)
	assert.False(t, cfg.Log.JSON)
	assert.Equal(t, 0, cfg.Log.Verbosity)
	assert.Equal(t, "DATA", cfg.Convert.Relation)
	assert.Equal(t, FormatJSON, cfg.Convert.Format)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("EXPERTISE_LOG_VERBOSITY", "2")
	t.Setenv("EXPERTISE_CONVERT_RELATION", "bpmn")

	cfg, err := LoadWithViper(NewViper())
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Log.Verbosity)
	assert.Equal(t, "bpmn", cfg.Convert.Relation)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	content := `
[labels]
values = ["LOW", "MEDIUM", "HIGH"]

[convert]
format = "yaml"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"LOW", "MEDIUM", "HIGH"}, cfg.Labels.Values)
	assert.Equal(t, FormatYAML, cfg.Convert.Format)
	// untouched keys keep their defaults
	assert.Equal(t, "DATA", cfg.Convert.Relation)

	labels, err := cfg.LabelSet()
	require.NoError(t, err)
	assert.Equal(t, 2, labels.Index("HIGH"))
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestMergeConfigFiles_Precedence(t *testing.T) {
	dir := t.TempDir()
	user := filepath.Join(dir, "user.toml")
	project := filepath.Join(dir, "project.toml")
	require.NoError(t, os.WriteFile(user, []byte("[convert]\nrelation = \"user\"\nformat = \"yaml\"\n"), 0644))
	require.NoError(t, os.WriteFile(project, []byte("[convert]\nrelation = \"project\"\n"), 0644))

	v := viper.New()
	SetDefaults(v)
	mergeConfigFiles(v, []string{user, filepath.Join(dir, "missing.toml"), project})

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)
	assert.Equal(t, "project", cfg.Convert.Relation)
	// sibling key only set by the user file survives the project merge
	assert.Equal(t, FormatYAML, cfg.Convert.Format)
}

func TestLoad_EnvironmentBeatsProjectFile(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	require.NoError(t, os.WriteFile(ConfigFileName, []byte("[convert]\nrelation = \"file\"\nformat = \"yaml\"\n"), 0644))
	t.Setenv("EXPERTISE_CONVERT_RELATION", "env")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "env", cfg.Convert.Relation)
	assert.Equal(t, FormatYAML, cfg.Convert.Format)
}

func TestLoad_UserAndProjectFiles(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())

	userDir := filepath.Join(home, ConfigDirName)
	require.NoError(t, os.MkdirAll(userDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(userDir, ConfigFileName),
		[]byte("[log]\nverbosity = 1\n\n[convert]\nrelation = \"user\"\n"), 0644))
	require.NoError(t, os.WriteFile(ConfigFileName, []byte("[convert]\nrelation = \"project\"\n"), 0644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "project", cfg.Convert.Relation)
	assert.Equal(t, 1, cfg.Log.Verbosity)
	assert.Equal(t, FormatJSON, cfg.Convert.Format)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Labels:  LabelsConfig{Values: []string{"NOVICE", "EXPERT"}},
			Convert: ConvertConfig{Relation: "DATA", Format: FormatJSON},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "yaml format is valid", mutate: func(c *Config) { c.Convert.Format = FormatYAML }},
		{name: "empty labels", mutate: func(c *Config) { c.Labels.Values = nil }, wantErr: true},
		{name: "duplicate labels", mutate: func(c *Config) { c.Labels.Values = []string{"A", "A"} }, wantErr: true},
		{name: "negative verbosity", mutate: func(c *Config) { c.Log.Verbosity = -1 }, wantErr: true},
		{name: "empty relation", mutate: func(c *Config) { c.Convert.Relation = "" }, wantErr: true},
		{name: "unknown format", mutate: func(c *Config) { c.Convert.Format = "arff" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_LabelErrorIsSchemaError(t *testing.T) {
	cfg := Config{Convert: ConvertConfig{Relation: "DATA", Format: FormatJSON}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidSchema))
	assert.Contains(t, err.Error(), "labels.values")
}

func TestConfigSchema(t *testing.T) {
	cfg := Config{Labels: LabelsConfig{Values: []string{"NOVICE", "EXPERT"}}}

	s, err := cfg.Schema()
	require.NoError(t, err)
	assert.Equal(t, "expertise", s.ClassAttribute())
	assert.True(t, s.Labels().Contains(expertise.Expert))
}

func TestGetters(t *testing.T) {
	var cfg Config
	assert.Equal(t, "DATA", cfg.GetRelation())
	assert.Equal(t, FormatJSON, cfg.GetFormat())
	assert.Contains(t, cfg.String(), "Relation: DATA")
}

func TestLoadCaches(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	chdir(t, t.TempDir())

	first, err := Load()
	require.NoError(t, err)
	second, err := Load()
	require.NoError(t, err)
	assert.Same(t, first, second)
}
