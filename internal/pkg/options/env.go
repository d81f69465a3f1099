package options

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
)

const envPrefix = "SALESNAV"

// envNamingConvention maps flag name to ENV variable name,
// eg. "log-file" -> "SALESNAV_LOG_FILE".
type envNamingConvention struct{}

func (*envNamingConvention) Replace(flagName string) string {
	if len(flagName) == 0 {
		panic(fmt.Errorf("flag name cannot be empty"))
	}
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}

// loadDotEnv loads the ".env" file from the directory, if present.
func loadDotEnv(dir string) error {
	path := filepath.Join(dir, ".env")
	exists, err := afero.Exists(afero.NewOsFs(), path)
	if err != nil {
		return fmt.Errorf("cannot check if path \"%s\" exists: %s", path, err)
	}
	if !exists {
		return nil
	}
	return godotenv.Load(path)
}
