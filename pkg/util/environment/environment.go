package environment

import "todo-go-backend/config"

// Application environment names, mirrored from config for callers that
// should not depend on the config package directly.
const (
	Development = config.Development
	Test        = config.Test
	E2E         = config.E2E
	Production  = config.Production
)

// IsProduction reports whether the loaded config targets production.
func IsProduction() bool {
	return config.C.AppEnv == Production
}
