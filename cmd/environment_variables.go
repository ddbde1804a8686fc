package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

const (
	EnvironmentVariablePrefix = "VIEWPORT_"

	// fileSuffix is appended to a flag's env var name to read its value from
	// a file instead.
	fileSuffix = "_FILE"
)

// SetFlagsFromEnvVariables sets each flag from an env variable whose name
// starts with `VIEWPORT_`. Alternatively, the value is read from the file
// named by the env variable suffixed with `_FILE`.
func SetFlagsFromEnvVariables(fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		envVar := flagToEnvVarName(f)
		if val, present := os.LookupEnv(envVar); present {
			err = fs.Set(f.Name, val)
			return
		}
		if strings.HasSuffix(envVar, fileSuffix) {
			return
		}
		if path, present := os.LookupEnv(envVar + fileSuffix); present {
			val, readErr := os.ReadFile(path)
			if readErr != nil {
				err = fmt.Errorf("reading value for flag %s from file: %w", f.Name, readErr)
				return
			}
			err = fs.Set(f.Name, string(val))
		}
	})
	return err
}

func flagToEnvVarName(f *pflag.Flag) string {
	return fmt.Sprintf("%s%s", EnvironmentVariablePrefix, strings.ReplaceAll(strings.ToUpper(f.Name), "-", "_"))
}
