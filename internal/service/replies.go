package service

import "strings"

const (
	cmdStart   = "/start"
	cmdNews    = "/news"
	cmdList    = "/list"
	cmdPublish = "/publish"
	cmdHelp    = "/help"

	fieldSeparator = "|"
	dateLayout     = "2006-01-02"
)

const (
	replyNotAdmin = "⚠️ Siz admin emassiz!"

	replyGreeting = "👋 *Assalomu alaykum!*\n\n" +
		"Bu ADU Litsey yangiliklar boti.\n" +
		"Yangiliklarni vebsaytimizda kuzatib boring."

	replyAdminHelp = "🤖 *ADU Litsey Admin Bot*\n\n" +
		"*Buyruqlar:*\n" +
		"/news - Yangilik qo'shish\n" +
		"/list - Yangiliklarni ko'rish\n" +
		"/publish [id] - Yangilikni nashr qilish\n" +
		"/help - Yordam"

	replyNewsUsage = "📝 *Format:*\n" +
		"`/news Sarlavha|Matn|Rasm URL (ixtiyoriy)`\n\n" +
		"*Misol:*\n" +
		"`/news Yangi laboratoriya|Bugun yangi...|https://image.url`"

	replyPostCreated = "✅ *Yangi yangilik qo'shildi!*\n\n" +
		"*Sarlavha:* %s\n" +
		"*ID:* %s\n\n" +
		"Nashr qilish uchun:\n" +
		"`/publish %s`"

	replyNoPosts    = "📭 Yangiliklar topilmadi."
	replyListHeader = "📋 *Yangi yangiliklar:*\n\n"
	replyListItem   = "%d. %s (%s)\n   ID: `%s`\n   📅 %s\n\n"

	replyPostPublished = "🎉 *Yangilik nashr qilindi!*\n\n" +
		"*Sarlavha:* %s\n" +
		"Vebsaytda ko'rish mumkin."

	replyPostNotFound = "❌ Yangilik topilmadi."

	replyStoreError = "❌ Xatolik: %s"
)

var markdownEscaper = strings.NewReplacer(
	"_", "\\_",
	"*", "\\*",
	"`", "\\`",
	"[", "\\[",
)

// escapeMarkdown keeps user supplied text from breaking the reply's Markdown.
// Legacy Markdown does not honour escapes inside an entity, so escaped text must sit outside one.
func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
