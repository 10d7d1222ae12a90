package middlewares

import (
	"github.com/gin-gonic/gin"

	"github.com/ola007-cpu/webApp/http/controller"
)

type Middlewares struct {
	CORSMiddleware     gin.HandlerFunc
	IdentityMiddleware gin.HandlerFunc
}

func NewMiddlewares(ctrl *controller.Controller) (*Middlewares, error) {
	cors := CORSMiddleware(ctrl.Config.EnvConfig)
	identity := IdentityMiddleware(ctrl.Config.EnvConfig)

	return &Middlewares{
		CORSMiddleware:     cors,
		IdentityMiddleware: identity,
	}, nil
}
