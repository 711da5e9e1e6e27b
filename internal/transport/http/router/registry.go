package router

import "github.com/gin-gonic/gin"

// APIModule is anything that mounts its routes under the /api group.
type APIModule interface{ MountAPI(*gin.RouterGroup) }

// Registry collects modules and mounts them in registration order.
type Registry struct {
	mods []APIModule
}

func (r *Registry) Register(mods ...APIModule) {
	r.mods = append(r.mods, mods...)
}

func (r *Registry) MountAll(api *gin.RouterGroup) {
	for _, m := range r.mods {
		m.MountAPI(api)
	}
}
