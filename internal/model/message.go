package model

// User-facing messages shown in the error banner.
const (
	MsgInvalidIncome    = "Por favor ingresa un valor válido para el ingreso mensual"
	MsgSelectRiskLevel  = "Por favor selecciona un nivel de riesgo para ARL"
	MsgSelectPercentage = "Por favor selecciona un porcentaje para CCF"
	MsgQuoteFailed      = "Error al calcular los aportes"
	// followed by the comma-separated field names
	MsgMissingFields = "Campos obligatorios ausentes: "
)
