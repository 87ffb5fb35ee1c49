package survey

import (
	"strings"

	"github.com/topservice/pesquisas-api/internal/domain"
)

// commentSeparator joins contributions from different respondents under the
// same title.
const commentSeparator = "\n\n---\n\n"

// titledField pairs a display title with the long-text field behind it.
// Each survey tipo asks a different set of long-text questions.
type titledField struct {
	Title string
	Field Field
}

var guiasComments = []titledField{
	{"Avaliação das companhias aéreas", FieldAvaliacaoCiasAereas},
	{"Nome dos guias locais", FieldNomeGuiasLocais},
	{"Comentários sobre os guias locais", FieldComentariosGuiasLocais},
	{"Comentários sobre transfer", FieldComentariosTransfer},
	{"Comentários feitos pelos guias que avaliaram", FieldComentariosGuia},
	{"Sugestões dos guias que avaliaram", FieldSugestoes},
	{"Custos extras?", FieldQuaisCustosExtras},
	{"Comentários sobre passeio", FieldComentarioPasseio},
}

var convidadosComments = []titledField{
	{"Comentários gerais", FieldComentarios},
	{"Sugestões de destinos", FieldSugestaoDestino},
	{"Comentários sobre passeios", FieldComentarioPasseio},
}

var corporativoComments = []titledField{
	{"Comentários", FieldComentarios},
	{"Sugestão Destino", FieldSugestaoDestino},
	{"Convidados No show", FieldConvidadosNoShow},
	{"Avaliação cias aéreas", FieldAvaliacaoCiasAereas},
	{"Nome guias locais", FieldNomeGuiasLocais},
	{"Comentários guias locais", FieldComentariosGuiasLocais},
	{"Comentários transfer", FieldComentariosTransfer},
	{"Comentários Guia", FieldComentariosGuia},
	{"Sugestões", FieldSugestoes},
	{"Comentários alimentação", FieldComentariosAlimentacao},
	{"Quais custos extras?", FieldQuaisCustosExtras},
	{"Comentário passeio", FieldComentarioPasseio},
	{"Por favor deixe comentários ou sugestões", FieldComentariosMelhorias},
	{"Comente experiência", FieldComenteExperiencia},
	{"Comente criação", FieldComenteCriacao},
	{"Comente Qualidade", FieldComenteQualidade},
}

func commentFields(tipo string) []titledField {
	switch tipo {
	case domain.TipoGuias:
		return guiasComments
	case domain.TipoConvidados:
		return convidadosComments
	default:
		return corporativoComments
	}
}

// CollectComments gathers the tipo's long-text answers across the given
// items, one comment per title. With multiple items, every non-empty
// contribution is rendered as "{text}\n\n— {author}" (author omitted when
// the item's tipo carries none) and the contributions are joined with a
// fixed separator. With a single item, the author is reported as a separate
// field instead. Titles with no content anywhere are dropped.
func CollectComments(items []domain.SurveyItem, tipo string) []domain.LongTextComment {
	comments := make([]domain.LongTextComment, 0)

	for _, tf := range commentFields(tipo) {
		if len(items) == 1 {
			cv := items[0].ColumnValues
			content := TextValue(cv, tf.Field)
			if strings.TrimSpace(content) == "" {
				continue
			}
			comment := domain.LongTextComment{Title: tf.Title, Content: content}
			if author := authorName(cv, tipo); author != "" {
				comment.Author = &author
			}
			comments = append(comments, comment)
			continue
		}

		var parts []string
		for _, item := range items {
			text := TextValue(item.ColumnValues, tf.Field)
			if strings.TrimSpace(text) == "" {
				continue
			}
			// Author resolution follows each respondent's own tipo, which
			// may differ from the requested one on mixed boards.
			itemTipo := TextValue(item.ColumnValues, FieldTipo)
			if author := authorName(item.ColumnValues, itemTipo); author != "" {
				text = text + "\n\n— " + author
			}
			parts = append(parts, text)
		}
		if len(parts) == 0 {
			continue
		}
		comments = append(comments, domain.LongTextComment{
			Title:   tf.Title,
			Content: strings.Join(parts, commentSeparator),
		})
	}

	return comments
}

// authorName resolves the contributor's name for a tipo: guides sign with
// the guide-name field, corporate contacts with theirs, guests stay
// anonymous.
func authorName(cv domain.ColumnValues, tipo string) string {
	switch tipo {
	case domain.TipoGuias:
		return TextValue(cv, FieldNomeGuia)
	case domain.TipoCorporativo:
		return TextValue(cv, FieldNomeCorporativo)
	default:
		return ""
	}
}
