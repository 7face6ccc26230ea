package handlers

import (
	"go.uber.org/zap"

	"github.com/LianHaeming/weekplan/advisor"
	"github.com/LianHaeming/weekplan/config"
	"github.com/LianHaeming/weekplan/tmpl"
)

// Deps holds all handler dependencies.
type Deps struct {
	Config    *config.Config
	Advisor   *advisor.Advisor
	Templates *tmpl.Templates
	Logger    *zap.Logger
}
