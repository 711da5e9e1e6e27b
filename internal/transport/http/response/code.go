package response

// Fixed texts of the wire contract.
const (
	MsgSuccess  = "success"
	MsgAssigned = "Recurs assignat amb èxit"
	MsgRevoked  = "Assignació revocada"
	MsgLiveness = "Servidor de Gestió de Xarxa Local funcionant."
	MsgInternal = "internal error"
)
