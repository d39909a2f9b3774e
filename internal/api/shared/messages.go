package shared

// Client-facing response messages. Internal errors never reach clients.
const (
	MsgEmailTaken         = "Email ya registrado"
	MsgInvalidCredentials = "Credenciales inválidas"
	MsgTaskNotFound       = "Tarea no encontrada"
	MsgTaskDeleted        = "Tarea eliminada exitosamente"
	MsgNotAuthenticated   = "No autenticado"
	MsgUnauthorized       = "No se pudo validar las credenciales"
	MsgSuggestionsOff     = "Las sugerencias no están configuradas"
	MsgInvalidRequest     = "Formato de solicitud inválido"
	MsgInvalidEntity      = "Datos de entidad inválidos"
	MsgValidation         = "Error de validación"
	MsgNotFound           = "Recurso no encontrado"
	MsgMethodNotAllowed   = "Método no permitido"
	MsgServiceUnavailable = "Servicio no disponible"
	MsgUnexpected         = "Ocurrió un error inesperado"
)
