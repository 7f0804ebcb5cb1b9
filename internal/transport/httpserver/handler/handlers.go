package handler

import (
	"church-app-go/internal/config"
	congregationdomain "church-app-go/internal/domain/congregation"
	demodatadomain "church-app-go/internal/domain/demodata"
	"church-app-go/pkg/logger"

	"github.com/go-playground/validator/v10"
)

type Handlers struct {
	Demo         *demodatadomain.Service
	Congregation *congregationdomain.Service
	demoCfg      config.DemoConfig
	validate     *validator.Validate
	log          logger.Logger
}

func New(demo *demodatadomain.Service, cong *congregationdomain.Service, demoCfg config.DemoConfig, log logger.Logger) *Handlers {
	return &Handlers{
		Demo:         demo,
		Congregation: cong,
		demoCfg:      demoCfg,
		validate:     validator.New(),
		log:          log,
	}
}
