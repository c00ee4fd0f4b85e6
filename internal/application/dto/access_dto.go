package dto

// AccessDecisionResponse resultado del guard de navegación para una ruta.
// Si Allow es false, Redirect indica la página terminal a la que enviar.
type AccessDecisionResponse struct {
	Path     string `json:"path"`
	Allow    bool   `json:"allow"`
	Redirect string `json:"redirect,omitempty"`
}
