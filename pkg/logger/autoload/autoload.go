// Package autoload initializes the process logger from the environment as
// a side effect of being imported.
package autoload

import (
	configx "github.com/elitebeauty/clinic-concierge/pkg/config"
	logx "github.com/elitebeauty/clinic-concierge/pkg/logger"
)

func init() {
	conf := configx.MustNew[logx.Config]("LOG")
	logx.Init(*conf)
}
