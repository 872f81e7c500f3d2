package ai

import (
	"context"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"
)

// NoMatchAnswer is what the assistant must reply when no FAQ entry fits.
const NoMatchAnswer = "Je n'ai pas cette information dans la FAQ"

const faqInstruction = `Tu es un assistant qui répond uniquement à partir de la FAQ ci-dessous.
- Fais correspondre les questions même si elles contiennent des fautes d'orthographe, accents manquants ou formulation différente.
- Ignore la casse, les accents et la ponctuation.
- Si la question correspond approximativement à une FAQ, donne la réponse exacte.
- Si aucune correspondance, réponds "` + NoMatchAnswer + `".`

const seoInstruction = `Tu es un expert SEO qui génère un titre et une description concis pour une page web.
Réponds strictement sur deux lignes, sans autre texte :
Titre: <titre SEO>
Description: <meta description>`

var (
	faqTemplate = prompt.FromMessages(
		schema.FString,
		schema.SystemMessage(faqInstruction),
		schema.SystemMessage("{context}"),
		schema.UserMessage("{question}"),
	)

	seoTemplate = prompt.FromMessages(
		schema.FString,
		schema.SystemMessage(seoInstruction),
		schema.UserMessage("Génère un titre SEO et une meta description pour ce contenu : {content}"),
	)
)

// FAQMessages builds the instruction, the FAQ context and the question.
func FAQMessages(ctx context.Context, faqContext, question string) ([]*schema.Message, error) {
	return faqTemplate.Format(ctx, map[string]any{
		"context":  faqContext,
		"question": question,
	})
}

// SEOMessages builds the SEO instruction and the content request.
func SEOMessages(ctx context.Context, content string) ([]*schema.Message, error) {
	return seoTemplate.Format(ctx, map[string]any{
		"content": content,
	})
}
