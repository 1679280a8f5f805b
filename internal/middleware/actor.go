package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Yorfad/PROVIAL-sub003/internal/domain"
)

type ctxKey string

const actorKey ctxKey = "actor"

// CallerActor resolves the caller identity from the X-Usuario-Id and X-Rol
// headers the gateway injects after authenticating the request. Requests
// without a usable identity are rejected here; role checks stay in the
// service layer, which receives the role explicitly.
func CallerActor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		usuarioID, err := strconv.ParseInt(r.Header.Get("X-Usuario-Id"), 10, 64)
		if err != nil || usuarioID <= 0 {
			http.Error(w, "X-Usuario-Id header required", http.StatusUnauthorized)
			return
		}

		rol := domain.Rol(r.Header.Get("X-Rol"))
		switch rol {
		case domain.RolBrigada, domain.RolCOP, domain.RolAdmin:
		default:
			http.Error(w, "X-Rol header required", http.StatusUnauthorized)
			return
		}

		actor := domain.Actor{UsuarioID: usuarioID, Rol: rol}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), actorKey, actor)))
	})
}

// ActorFrom returns the actor CallerActor stored on the context.
func ActorFrom(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(domain.Actor)
	return actor, ok
}
