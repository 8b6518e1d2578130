package auth

import (
	"net/http"

	"github.com/listdeck/listdeck/internal/models"
	pkghttp "github.com/listdeck/listdeck/pkg/http"
)

// Dashboard sections gated by role.
const (
	SectionUserManagement     = "user-management"
	SectionDocumentManagement = "document-management"
)

// deniedSections is the static role-permission lookup: the sections each
// role may NOT access. Roles absent from the map deny nothing.
var deniedSections = map[models.Role][]string{
	models.RoleAdmin:  {},
	models.RoleEditor: {SectionUserManagement},
	models.RoleViewer: {SectionUserManagement},
}

// Denied reports whether the role is barred from the section.
func Denied(role models.Role, section string) bool {
	for _, denied := range deniedSections[role] {
		if denied == section {
			return true
		}
	}
	return false
}

// RequireSection rejects authenticated users whose role is denied the given
// dashboard section. Must run after Middleware.
func RequireSection(section string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := GetUserFromContext(r)
			if claims == nil {
				pkghttp.WriteUnauthorized(w, "Authentication required")
				return
			}
			if Denied(claims.Role, section) {
				pkghttp.WriteForbidden(w, "You do not have access to this section")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
