package cmd

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "binres"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	inputFlagName     = "input"
	outputFlagName    = "output"
	headerFlagName    = "header"
	basenameFlagName  = "basename"
	namespaceFlagName = "namespace"
	manifestFlagName  = "manifest"
	verboseFlagName   = "verbose"
	logFileFlagName   = "log-file"
	exitCodeFlagName  = "exit-code"

	inputConfigKey     = "resources.input"
	outputConfigKey    = "resources.output"
	headerConfigKey    = "resources.header"
	basenameConfigKey  = "generate.basename"
	namespaceConfigKey = "generate.namespace"
	manifestConfigKey  = "generate.manifest"

	defaultInputDir  = "./Resources/BinaryRes"
	defaultOutputDir = "./Client/Source/KiwiApp_Resources"
	defaultHeader    = "./Resources/SourceHeader.txt"
	defaultBasename  = "KiwiApp_BinaryData"
	defaultNamespace = "kiwi"
	defaultManifest  = ""

	envPrefix = "BINRES"
)

// configReadErr holds a malformed binres.yaml so it can be logged once the
// logger exists. A missing file is not an error.
var configReadErr error

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	for key, value := range map[string]any{
		configVersionKey:   currentConfigVersion,
		inputConfigKey:     defaultInputDir,
		outputConfigKey:    defaultOutputDir,
		headerConfigKey:    defaultHeader,
		basenameConfigKey:  defaultBasename,
		namespaceConfigKey: defaultNamespace,
		manifestConfigKey:  defaultManifest,
	} {
		viper.SetDefault(key, value)
	}

	setLogDefaults()

	err := viper.ReadInConfig()

	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
		configReadErr = err
	}
}
