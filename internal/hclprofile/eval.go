package hclprofile

import (
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// newEvalContext builds the evaluation context available to profile
// expressions. Two variables are exposed:
//
//   - base: the resolved base directory, so profiles can anchor paths
//     explicitly ("${base}/envs/app") instead of relying on the process
//     working directory.
//   - env: an object of the ambient environment variables, so profiles can
//     interpolate values like env.HOME or env.PYTHON_BIN.
func newEvalContext(baseDir string) *hcl.EvalContext {
	envVars := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		envVars[name] = cty.StringVal(value)
	}

	envVal := cty.EmptyObjectVal
	if len(envVars) > 0 {
		envVal = cty.ObjectVal(envVars)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"base": cty.StringVal(baseDir),
			"env":  envVal,
		},
	}
}
