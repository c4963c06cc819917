package skill

import (
	"appointment-skill/internal/pkg/constvars"
	"appointment-skill/internal/pkg/dto/requests"
	"appointment-skill/internal/pkg/dto/responses"
	"fmt"
	"strings"
)

var ssmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

type ResponseBuilder struct {
	body responses.ResponseBody
}

func NewResponseBuilder() *ResponseBuilder {
	return &ResponseBuilder{}
}

func (b *ResponseBuilder) Speak(speech string) *ResponseBuilder {
	b.body.OutputSpeech = ssmlSpeech(speech)
	return b
}

// Reprompt also keeps the session open.
func (b *ResponseBuilder) Reprompt(speech string) *ResponseBuilder {
	b.body.Reprompt = &responses.Reprompt{OutputSpeech: ssmlSpeech(speech)}
	return b.WithShouldEndSession(false)
}

func (b *ResponseBuilder) WithSimpleCard(title, content string) *ResponseBuilder {
	b.body.Card = &responses.Card{
		Type:    constvars.CardTypeSimple,
		Title:   title,
		Content: content,
	}
	return b
}

func (b *ResponseBuilder) AddDelegateDirective(intent *requests.Intent) *ResponseBuilder {
	b.body.Directives = append(b.body.Directives, responses.Directive{
		Type:          constvars.DirectiveDialogDelegate,
		UpdatedIntent: intent,
	})
	return b
}

func (b *ResponseBuilder) AddConfirmIntentDirective(intent *requests.Intent) *ResponseBuilder {
	b.body.Directives = append(b.body.Directives, responses.Directive{
		Type:          constvars.DirectiveDialogConfirmIntent,
		UpdatedIntent: intent,
	})
	return b
}

func (b *ResponseBuilder) WithShouldEndSession(end bool) *ResponseBuilder {
	b.body.ShouldEndSession = &end
	return b
}

func (b *ResponseBuilder) GetResponse() *responses.ResponseBody {
	body := b.body
	return &body
}

func ssmlSpeech(speech string) *responses.OutputSpeech {
	return &responses.OutputSpeech{
		Type: constvars.OutputSpeechTypeSSML,
		SSML: fmt.Sprintf(constvars.SSMLSpeakFormat, ssmlEscaper.Replace(speech)),
	}
}
