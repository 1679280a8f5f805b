package domain

// TipoEmergencia is a reference-catalog entry for the kind of road
// emergency a situation reports. The catalog is read-only for this core.
type TipoEmergencia struct {
	ID     int64  `json:"id"`
	Codigo string `json:"codigo"`
	Nombre string `json:"nombre"`
	Icono  string `json:"icono,omitempty"`
	Color  string `json:"color,omitempty"`
	Activo bool   `json:"activo"`
}

// Ruta is a reference-catalog road the situation sits on.
type Ruta struct {
	ID     int64  `json:"id"`
	Codigo string `json:"codigo"`
	Nombre string `json:"nombre"`
}
