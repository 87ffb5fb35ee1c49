package survey

import (
	"testing"

	"github.com/topservice/pesquisas-api/internal/domain"
)

func TestCollectCommentsSingleItem(t *testing.T) {
	item := testItem("1", map[Field]string{
		FieldTipo:        domain.TipoGuias,
		FieldNomeGuia:    "Ana",
		FieldSugestoes:   "Mais tempo livre no roteiro",
		FieldComentarios: "ignorado para guias", // not part of the guide set
	})

	comments := CollectComments([]domain.SurveyItem{item}, domain.TipoGuias)
	if len(comments) != 1 {
		t.Fatalf("comment count = %d, want 1", len(comments))
	}
	got := comments[0]
	if got.Title != "Sugestões dos guias que avaliaram" {
		t.Fatalf("title = %q", got.Title)
	}
	if got.Content != "Mais tempo livre no roteiro" {
		t.Fatalf("content = %q", got.Content)
	}
	if got.Author == nil || *got.Author != "Ana" {
		t.Fatalf("author = %v, want Ana", got.Author)
	}
}

func TestCollectCommentsSingleGuestHasNoAuthor(t *testing.T) {
	item := testItem("1", map[Field]string{
		FieldTipo:        domain.TipoConvidados,
		FieldComentarios: "Viagem excelente do início ao fim",
	})

	comments := CollectComments([]domain.SurveyItem{item}, domain.TipoConvidados)
	if len(comments) != 1 {
		t.Fatalf("comment count = %d, want 1", len(comments))
	}
	if comments[0].Author != nil {
		t.Fatalf("author = %q, want nil", *comments[0].Author)
	}
}

func TestCollectCommentsJoinsMultipleAuthors(t *testing.T) {
	items := []domain.SurveyItem{
		testItem("1", map[Field]string{
			FieldTipo:      domain.TipoGuias,
			FieldNomeGuia:  "Ana",
			FieldSugestoes: "Primeiro comentário",
		}),
		testItem("2", map[Field]string{
			FieldTipo:      domain.TipoGuias,
			FieldNomeGuia:  "Bruno",
			FieldSugestoes: "Segundo comentário",
		}),
	}

	comments := CollectComments(items, domain.TipoGuias)
	if len(comments) != 1 {
		t.Fatalf("comment count = %d, want 1", len(comments))
	}
	want := "Primeiro comentário\n\n— Ana\n\n---\n\nSegundo comentário\n\n— Bruno"
	if comments[0].Content != want {
		t.Fatalf("content = %q, want %q", comments[0].Content, want)
	}
	if comments[0].Author != nil {
		t.Fatalf("author field should stay empty on joined comments")
	}
}

func TestCollectCommentsAuthorFollowsItemTipo(t *testing.T) {
	// A guest contribution on a mixed set carries no author suffix even
	// though the requested tipo is Guias.
	items := []domain.SurveyItem{
		testItem("1", map[Field]string{
			FieldTipo:      domain.TipoGuias,
			FieldNomeGuia:  "Ana",
			FieldSugestoes: "Do guia",
		}),
		testItem("2", map[Field]string{
			FieldTipo:      domain.TipoConvidados,
			FieldSugestoes: "Do convidado",
		}),
	}

	comments := CollectComments(items, domain.TipoGuias)
	if len(comments) != 1 {
		t.Fatalf("comment count = %d, want 1", len(comments))
	}
	want := "Do guia\n\n— Ana\n\n---\n\nDo convidado"
	if comments[0].Content != want {
		t.Fatalf("content = %q, want %q", comments[0].Content, want)
	}
}

func TestCollectCommentsSkipsBlankAndUnknownTipo(t *testing.T) {
	items := []domain.SurveyItem{
		testItem("1", map[Field]string{
			FieldTipo:      domain.TipoCorporativo,
			FieldSugestoes: "   ",
		}),
	}

	// Blank content under every title yields no comments.
	if got := CollectComments(items, domain.TipoCorporativo); len(got) != 0 {
		t.Fatalf("comments = %+v, want none", got)
	}

	// An unknown tipo falls back to the corporate question set.
	items[0] = testItem("1", map[Field]string{
		FieldTipo:            "Outro",
		FieldNomeCorporativo: "Carla",
		FieldComentarios:     "Conteúdo corporativo",
	})
	got := CollectComments(items, "Outro")
	if len(got) != 1 || got[0].Title != "Comentários" {
		t.Fatalf("fallback comments = %+v", got)
	}
}
