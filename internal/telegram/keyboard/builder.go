package keyboard

import (
	"github.com/futig/edututor/internal/entity"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Builder creates inline keyboards
type Builder struct{}

func NewBuilder() *Builder {
	return &Builder{}
}

// LanguageKeyboard offers every output language on one row and marks the
// current one.
func (b *Builder) LanguageKeyboard(current entity.Language) tgbotapi.InlineKeyboardMarkup {
	row := make([]tgbotapi.InlineKeyboardButton, 0, len(entity.Languages()))
	for _, lang := range entity.Languages() {
		label := string(lang)
		if lang == current {
			label = "✅ " + label
		}
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, EncodeCallback(ActionLanguage, string(lang))))
	}

	return tgbotapi.NewInlineKeyboardMarkup(row)
}
