package render

import (
	"fmt"
	"strings"

	"github.com/futig/edututor/internal/entity"
)

const (
	MsgWelcome = "🎓 EduTutor AI: Personalized Learning & Assessment\n\n" +
		"Log in to continue:\n/login <username> <password>"

	MsgNeedLogin = "🔒 Please log in first:\n/login <username> <password>"

	MsgLoginUsage = "Usage: /login <username> <password>"

	MsgLoggedOut = "👋 Logged out. Use /login to continue."

	MsgChooseLanguage = "🌐 Choose the explanation language:"

	MsgSendPDF = "📄 Send a PDF document to get a quiz."

	// Telegram refuses empty message texts.
	MsgEmptyReply = "🤷 The model returned an empty answer. Try rephrasing."

	ErrGeneric = "❌ Something went wrong. Please try again."

	ErrUnknownCommand = "❌ Unknown command. Use /help"

	MsgHelp = `🤖 Commands:

/start - Welcome message
/login <username> <password> - Unlock the tutor
/lang - Choose the explanation language
/logout - Lock the tutor again
/help - Show this help

After logging in:
• send any text to get a simple explanation of that concept
• send a PDF document to get 5 multiple-choice questions`
)

// LanguageSet confirms a language choice.
func LanguageSet(lang entity.Language) string {
	return fmt.Sprintf("✅ Explanations will be in %s.", lang)
}

// InvalidDocument explains why an uploaded document was refused.
func InvalidDocument(err error) string {
	return entity.PrefixPDFError + err.Error() + "\n\n" + MsgSendPDF
}

// Chunks splits text into pieces under Telegram's message length limit,
// preferring line breaks.
func Chunks(text string, limit int) []string {
	if text == "" {
		return []string{""}
	}

	var chunks []string
	for len([]rune(text)) > limit {
		runes := []rune(text)
		cut := limit
		if i := strings.LastIndex(string(runes[:limit]), "\n"); i > 0 {
			cut = len([]rune(string(runes[:limit])[:i]))
		}
		chunks = append(chunks, string(runes[:cut]))
		text = strings.TrimLeft(string(runes[cut:]), "\n")
	}

	return append(chunks, text)
}
