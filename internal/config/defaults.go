package config

import "runtime"

// defaultHostPython is the interpreter name used for provisioning when the
// profile does not name one. Windows installs expose "python", everything
// else ships "python3".
var defaultHostPython = func() string {
	if runtime.GOOS == "windows" {
		return "python"
	}
	return "python3"
}()
