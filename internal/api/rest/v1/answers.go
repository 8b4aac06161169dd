package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Catalog keys
const (
	answerOK      = "OK"
	answerValid   = "valid"
	answerInvalid = "invalid"
	answerRoot    = "root"
	answerSec     = "sec"
)

// Spanish comes first so it wins when nothing matches
var supportedLanguages = []language.Tag{language.Spanish, language.English}

var (
	answerMatcher = language.NewMatcher(supportedLanguages)
	answerCatalog = mustAnswerCatalog()
)

func mustAnswerCatalog() catalog.Catalog {
	c, err := newAnswerCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

func newAnswerCatalog() (catalog.Catalog, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.Spanish))
	entries := map[language.Tag]map[string]string{
		language.Spanish: {
			answerOK:      "OK",
			answerValid:   "Válido",
			answerInvalid: "No válido",
			answerRoot:    "Éxito!",
			answerSec:     "Éxito x2",
		},
		language.English: {
			answerOK:      "OK",
			answerValid:   "Valid",
			answerInvalid: "Invalid",
			answerRoot:    "Success!",
			answerSec:     "Success x2",
		},
	}
	for tag, messages := range entries {
		for key, msg := range messages {
			if err := b.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("failed to register answer %q for %s: %w", key, tag, err)
			}
		}
	}
	return b, nil
}

// answerPrinter negotiates the Accept-Language header against the supported languages
func answerPrinter(ctx *gin.Context) *message.Printer {
	tags, _, _ := language.ParseAcceptLanguage(ctx.GetHeader("Accept-Language"))
	_, index, _ := answerMatcher.Match(tags...)
	return message.NewPrinter(supportedLanguages[index], message.Catalog(answerCatalog))
}

func localize(ctx *gin.Context, key string) string {
	return answerPrinter(ctx).Sprintf(key)
}
