package entity

// Roles válidos en el token JWT (la emisión del token es externa al servicio).
const (
	RoleAdmin      = "admin"
	RoleSupervisor = "supervisor" // crea órdenes de conteo
	RoleBodeguero  = "bodeguero"  // ejecuta conteos y completa órdenes
)
