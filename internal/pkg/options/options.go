package options

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Options contains parsed flags and ENV variables.
type Options struct {
	Verbose          bool   `flag:"verbose"`       // verbose mode, print details to console
	LogFilePath      string `flag:"log-file"`      // path to the log file
	InputDir         string `flag:"input-dir"`     // directory with JSON export files
	Output           string `flag:"output"`        // output file name
	Pattern          string `flag:"pattern"`       // glob pattern for input files
	KeepCombined     bool   `flag:"keep-combined"` // keep the intermediate combined JSON file
	WorkingDirectory string // working directory
}

func NewOptions() *Options {
	return &Options{}
}

// BindPersistentFlags for all commands.
func (o *Options) BindPersistentFlags(flags *pflag.FlagSet) {
	flags.SortFlags = true
	flags.BoolP("help", "h", false, "print help for command")
	flags.StringP("log-file", "l", "", "path to a log file for details")
	flags.StringP("working-dir", "d", "", "use other working directory")
	flags.BoolP("verbose", "v", false, "print details")
}

// Validate required options - defined by field name.
func (o *Options) Validate(required []string) string {
	var messages []string
	envNaming := &envNamingConvention{}
	reflection := reflect.Indirect(reflect.ValueOf(o))
	types := reflect.TypeOf(*o)

	// Iterate over required fields
	for _, fieldName := range required {
		fieldType, exists := types.FieldByName(fieldName)
		fieldNameHumanReadable := strcase.ToDelimited(fieldName, ' ')
		if !exists {
			panic(fmt.Sprintf("field \"%s\" doesn't exist in Options struct", fieldName))
		}

		if reflection.FieldByName(fieldName).Len() > 0 {
			continue
		}

		// Create error message by field type
		if flag := fieldType.Tag.Get("flag"); len(flag) > 0 {
			messages = append(messages, fmt.Sprintf(
				`- Missing %s. Please use "--%s" flag or ENV variable "%s".`,
				fieldNameHumanReadable,
				flag,
				envNaming.Replace(flag),
			))
		} else {
			messages = append(messages, fmt.Sprintf(`- Missing %s.`, fieldNameHumanReadable))
		}
	}

	return strings.Join(messages, "\n")
}

// Load all sources of Options - flags, envs.
func (o *Options) Load(flags *pflag.FlagSet) (warnings []string, err error) {
	// Env parser
	envNaming := &envNamingConvention{}
	parser := viper.NewWithOptions(viper.EnvKeyReplacer(envNaming))

	// Bind flags
	if err = parser.BindPFlags(flags); err != nil {
		return
	}

	// Bind ENV variables
	parser.AutomaticEnv()

	// Set working directory + load .env file if present
	o.WorkingDirectory, err = getWorkingDirectory(parser)
	o.WorkingDirectory = strings.TrimRight(o.WorkingDirectory, string(os.PathSeparator))
	if err != nil {
		return
	}
	if err = loadDotEnv(o.WorkingDirectory); err != nil {
		return
	}

	// For each Options struct field with "flag" tag -> load value from parser.
	// Values sourced from ENV come back as strings, so coerce by field kind.
	reflection := reflect.Indirect(reflect.ValueOf(o))
	types := reflect.TypeOf(*o)
	for i := 0; i < reflection.NumField(); i++ {
		if flag := types.Field(i).Tag.Get("flag"); len(flag) > 0 {
			if value := parser.Get(flag); value != nil {
				field := reflection.Field(i)
				switch field.Kind() {
				case reflect.Bool:
					field.SetBool(cast.ToBool(value))
				case reflect.String:
					field.SetString(cast.ToString(value))
				default:
					field.Set(reflect.ValueOf(value))
				}
			}
		}
	}

	// Normalize the values into a uniform form
	o.normalize()

	return
}

func (o *Options) normalize() {
	o.InputDir = strings.TrimRight(o.InputDir, string(os.PathSeparator))
	o.Pattern = strings.TrimSpace(o.Pattern)
}

// Dump Options for debugging.
func (o *Options) Dump() string {
	return fmt.Sprintf("Parsed options: %#v", o)
}

// getWorkingDirectory from flag or by default from OS.
func getWorkingDirectory(parser *viper.Viper) (string, error) {
	value := parser.GetString("working-dir")
	if len(value) > 0 {
		return value, nil
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("cannot get current working directory: %s", err)
	}
	return dir, nil
}
