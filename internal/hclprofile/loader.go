package hclprofile

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/bootstrapgo/internal/config"
	"github.com/vk/bootstrapgo/internal/ctxlog"
	"github.com/vk/bootstrapgo/internal/fsutil"
)

// Loader parses .hcl launch profiles into the format-agnostic model.
type Loader struct{}

// NewLoader creates a new HCL profile loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot is the struct used to decode all supported top-level blocks.
// Pointer fields distinguish "absent" from "set to the zero value" so the
// merge over defaults only touches what the user actually wrote.
type fileRoot struct {
	Environment *environmentBlock `hcl:"environment,block"`
	Manifest    *manifestBlock    `hcl:"manifest,block"`
	App         *appBlock         `hcl:"app,block"`
	Remain      hcl.Body          `hcl:",remain"`
}

type environmentBlock struct {
	Dir        *string  `hcl:"dir,optional"`
	Python     *string  `hcl:"python,optional"`
	CreateArgs []string `hcl:"create_args,optional"`
	Prompt     *string  `hcl:"prompt,optional"`
}

type manifestBlock struct {
	Path *string `hcl:"path,optional"`
	URL  *string `hcl:"url,optional"`
}

type appBlock struct {
	Entrypoint *string           `hcl:"entrypoint,optional"`
	Args       []string          `hcl:"args,optional"`
	Env        map[string]string `hcl:"env,optional"`
}

// Load orchestrates the profile loading process: discover .hcl files under
// the given paths, decode each, and merge them over the defaults in
// discovery order (later files win per-attribute).
func (l *Loader) Load(ctx context.Context, baseDir string, paths ...string) (*config.Profile, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL profile loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFilesByExtension(".hcl", paths...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered profile files.", "count", len(files))

	profile := config.Default()
	evalCtx := newEvalContext(baseDir)
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse profile %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode profile %s: %w", file, diags)
		}

		mergeEnvironment(&profile.Environment, root.Environment)
		mergeManifest(&profile.Manifest, root.Manifest)
		mergeApp(&profile.App, root.App)
	}

	logger.Debug("Profile loading complete.",
		"environment_dir", profile.Environment.Dir,
		"manifest", profile.Manifest.Path,
		"entrypoint", profile.App.Path,
	)
	return profile, nil
}

func mergeEnvironment(dst *config.Environment, src *environmentBlock) {
	if src == nil {
		return
	}
	if src.Dir != nil {
		dst.Dir = *src.Dir
	}
	if src.Python != nil {
		dst.Python = *src.Python
	}
	if src.CreateArgs != nil {
		dst.CreateArgs = src.CreateArgs
	}
	if src.Prompt != nil {
		dst.Prompt = *src.Prompt
	}
}

func mergeManifest(dst *config.Manifest, src *manifestBlock) {
	if src == nil {
		return
	}
	if src.Path != nil {
		dst.Path = *src.Path
	}
	if src.URL != nil {
		dst.URL = *src.URL
	}
}

func mergeApp(dst *config.Entrypoint, src *appBlock) {
	if src == nil {
		return
	}
	if src.Entrypoint != nil {
		dst.Path = *src.Entrypoint
	}
	if src.Args != nil {
		dst.Args = src.Args
	}
	if src.Env != nil {
		dst.Env = src.Env
	}
}
