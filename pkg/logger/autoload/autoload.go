// Package autoload initializes the global logger from LOG_* environment
// variables on import.
package autoload

import (
	"github.com/kelseyhightower/envconfig"

	logx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/pkg/logger"
)

func init() {
	var conf logx.Config
	if err := envconfig.Process("LOG", &conf); err != nil {
		logx.Init()
		return
	}
	logx.Init(conf)
}
