package config

// Profile is the unified, format-agnostic representation of a launch
// profile: where the environment lives, which manifest to install, and
// what to launch.
type Profile struct {
	Environment Environment
	Manifest    Manifest
	App         Entrypoint
}

// Environment describes the virtual environment and how to provision it.
type Environment struct {
	// Dir is the environment directory, resolved against the base directory
	// unless absolute.
	Dir string

	// Python is the host interpreter used only for provisioning. Once the
	// environment exists, the environment's own interpreter is used instead.
	Python string

	// CreateArgs is the argv prefix passed to the host interpreter to
	// provision the environment; the environment directory is appended.
	CreateArgs []string

	// Prompt, when non-empty, names the environment in activated shells.
	Prompt string
}

// Manifest locates the dependency manifest. Its contents are opaque to the
// launcher; only the installer reads it.
type Manifest struct {
	// Path is the manifest file, resolved against the base directory.
	Path string

	// URL, when non-empty, is fetched to Path before installation.
	URL string
}

// Entrypoint describes the application handed to the environment's
// interpreter in the final stage.
type Entrypoint struct {
	// Path is the entry-point file, resolved against the base directory.
	Path string

	// Args are extra arguments appended after the entry-point file.
	Args []string

	// Env holds additional environment variables for the launched process.
	Env map[string]string
}

// Default returns the profile used when no profile file is given. The
// values mirror the conventional project layout: a "venv" directory, a
// "requirements.txt" manifest, and an "app/main.py" entry point.
func Default() *Profile {
	return &Profile{
		Environment: Environment{
			Dir:        "venv",
			Python:     defaultHostPython,
			CreateArgs: []string{"-m", "venv"},
		},
		Manifest: Manifest{
			Path: "requirements.txt",
		},
		App: Entrypoint{
			Path: "app/main.py",
		},
	}
}
