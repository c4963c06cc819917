package routers

import (
	"appointment-skill/internal/app/delivery/http/controllers"
	"appointment-skill/internal/app/delivery/http/middlewares"
	"appointment-skill/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachSkillRoutes(router chi.Router, middlewares *middlewares.Middlewares, skillController *controllers.SkillController) {
	router.With(middlewares.BodyBuffer).Post(constvars.SkillEndpointPath, skillController.HandleSkillRequest)
}
