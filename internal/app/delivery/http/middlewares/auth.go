package middlewares

import (
	"context"
	"net/http"
	"predictacare-service/internal/pkg/constvars"
	"predictacare-service/internal/pkg/exceptions"
	"predictacare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// AuthenticatePatient expects the patient JWT in the `token` header.
func (m *Middlewares) AuthenticatePatient(next http.Handler) http.Handler {
	return m.authenticate(constvars.HeaderUserToken, constvars.RolePatient, next)
}

// AuthenticateAdmin expects the admin JWT in the `atoken` header.
func (m *Middlewares) AuthenticateAdmin(next http.Handler) http.Handler {
	return m.authenticate(constvars.HeaderAdminToken, constvars.RoleAdmin, next)
}

// AuthenticateDoctor expects the doctor JWT in the `dtoken` header.
func (m *Middlewares) AuthenticateDoctor(next http.Handler) http.Handler {
	return m.authenticate(constvars.HeaderDoctorToken, constvars.RoleDoctor, next)
}

func (m *Middlewares) authenticate(header, wantRole string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := r.Header.Get(header)
		if tokenString == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		subjectID, role, err := utils.ParseAuthJWT(tokenString, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		if role != wantRole {
			requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			utils.LogSecurityEvent(m.Log, "role mismatch on protected route", requestID, "medium",
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String("want_role", wantRole),
				zap.String("got_role", role),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleMismatch(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_ACTOR_ID_KEY, subjectID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_ACTOR_ROLE_KEY, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
