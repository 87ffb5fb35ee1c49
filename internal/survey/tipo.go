package survey

import (
	"strings"

	"github.com/topservice/pesquisas-api/internal/domain"
)

// InferTipo decides the survey tipo for an item whose tipo column came back
// blank: a filled guide-name field marks a guide response, a filled
// corporate-contact field a corporate one, anything else is a guest.
func InferTipo(cv domain.ColumnValues) string {
	if strings.TrimSpace(TextValue(cv, FieldNomeGuia)) != "" {
		return domain.TipoGuias
	}
	if strings.TrimSpace(TextValue(cv, FieldNomeCorporativo)) != "" {
		return domain.TipoCorporativo
	}
	return domain.TipoConvidados
}
