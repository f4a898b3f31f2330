package configuration

import (
	"fmt"

	tplog "github.com/TopiaNetwork/signer/log"
	tplogcmm "github.com/TopiaNetwork/signer/log/common"
)

type LogConfiguration struct {
	Level  string `json:"level" envconfig:"LEVEL"`
	Format string `json:"format" envconfig:"FORMAT"`
	Output string `json:"output" envconfig:"OUTPUT"`
	File   string `json:"file" envconfig:"FILE"`
}

func DefLogConfiguration() *LogConfiguration {
	return &LogConfiguration{
		Level:  "warn",
		Format: tplog.DefaultLogFormat.String(),
		Output: tplog.DefaultLogOutput.String(),
	}
}

// Parse returns the typed settings for tplog.CreateMainLogger.
func (config *LogConfiguration) Parse() (tplogcmm.LogLevel, tplog.LogFormat, tplog.LogOutput, error) {
	level, err := tplogcmm.ParseLogLevel(config.Level)
	if err != nil {
		return tplogcmm.NoLevel, 0, 0, err
	}
	format, err := tplog.ParseLogFormat(config.Format)
	if err != nil {
		return tplogcmm.NoLevel, 0, 0, err
	}
	output, err := tplog.ParseLogOutput(config.Output)
	if err != nil {
		return tplogcmm.NoLevel, 0, 0, err
	}
	if output == tplog.FileLogOutput && config.File == "" {
		return tplogcmm.NoLevel, 0, 0, fmt.Errorf("log output %s needs a file", output)
	}
	return level, format, output, nil
}

func (config *LogConfiguration) Check() error {
	_, _, _, err := config.Parse()
	return err
}
