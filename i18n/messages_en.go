package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English
	message.SetString(lang, PageTitle, "Eco☘️ Upcycle Generator")
	message.SetString(lang, PageHeading, "♻️ Eco Upcycle Idea Generator 🌍")
	message.SetString(lang, PageLead, "🔍 Find great ideas for upcycling things you no longer need!")
	message.SetString(lang, PageLeadDetail, "We suggest creative, eco-friendly ways to reuse them.")
	message.SetString(lang, SidebarTitle, "🛠️ Eco settings")
	message.SetString(lang, SidebarAPI, "Gemini API settings")
	message.SetString(lang, SidebarKeyLabel, "Enter your API key")
	message.SetString(lang, SidebarKeySet, "Set API key")
	message.SetString(lang, SidebarInfo, "♻️ This app suggests ways to upcycle unwanted items! 🌍 Let's find eco-friendly solutions.")
	message.SetString(lang, SidebarStatusOn, "API key: configured")
	message.SetString(lang, SidebarStatusOff, "API key: not configured")
	message.SetString(lang, ItemLabel, "🏷️ Enter the name of an unwanted item")
	message.SetString(lang, ItemPlaceholder, "e.g. old jeans")
	message.SetString(lang, ItemSubmit, "✨ Generate ideas")
	message.SetString(lang, ResultHeading, "🌿 Upcycle ideas:")
	message.SetString(lang, Generating, "🔄 Generating ideas...")

	message.SetString(lang, NoticeKeySet, "API key configured! 🎉")
	message.SetString(lang, NoticeKeyEmpty, "Please enter an API key")
	message.SetString(lang, NoticeKeyFailed, "Failed to configure the API key: %s")
	message.SetString(lang, NoticeNotConfigured, "⚠️ Set your Gemini API key in the sidebar first")
	message.SetString(lang, NoticeItemEmpty, "🚨 Please enter an item name")
	message.SetString(lang, NoticeGenerateFailed, "An error occurred: %s")
}
