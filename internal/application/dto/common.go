package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse estado del servicio.
type HealthResponse struct {
	Status   string   `json:"status"`
	Service  string   `json:"service"`
	Profiles []string `json:"profiles"`
}

// WarningList aplana un error (posiblemente unido con errors.Join) en mensajes.
func WarningList(err error) []string {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []string
		for _, e := range joined.Unwrap() {
			out = append(out, WarningList(e)...)
		}
		return out
	}
	return []string{err.Error()}
}

