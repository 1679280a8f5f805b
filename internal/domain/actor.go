package domain

// Actor is the resolved caller of a mutating operation. Authentication
// happens upstream; the core receives the identity and role explicitly and
// never reads them from ambient state.
type Actor struct {
	UsuarioID int64
	Rol       Rol
}
