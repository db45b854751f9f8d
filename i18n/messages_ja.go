package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Japanese
	message.SetString(lang, PageTitle, "エコ☘️ アップサイクルジェネレーター")
	message.SetString(lang, PageHeading, "♻️ エコ アップサイクルアイデアジェネレーター 🌍")
	message.SetString(lang, PageLead, "🔍 不要な商品をアップサイクルする素晴らしいアイデアを見つけよう！")
	message.SetString(lang, PageLeadDetail, "環境に優しく、クリエイティブな再利用方法を提案します。")
	message.SetString(lang, SidebarTitle, "🛠️ エコ設定")
	message.SetString(lang, SidebarAPI, "Gemini API設定")
	message.SetString(lang, SidebarKeyLabel, "APIキーを入力")
	message.SetString(lang, SidebarKeySet, "APIキー設定")
	message.SetString(lang, SidebarInfo, "♻️ このアプリは不要な物をアップサイクルするアイデアを提案します！ 🌍 環境に優しいソリューションを見つけましょう。")
	message.SetString(lang, SidebarStatusOn, "APIキー: 設定済み")
	message.SetString(lang, SidebarStatusOff, "APIキー: 未設定")
	message.SetString(lang, ItemLabel, "🏷️ 不要な商品の名前を入力してください")
	message.SetString(lang, ItemPlaceholder, "例: 古いジーンズ")
	message.SetString(lang, ItemSubmit, "✨ アイデアを生成")
	message.SetString(lang, ResultHeading, "🌿 アップサイクルアイデア:")
	message.SetString(lang, Generating, "🔄 アイデア生成中...")

	message.SetString(lang, NoticeKeySet, "APIキーが正常に設定されました！ 🎉")
	message.SetString(lang, NoticeKeyEmpty, "APIキーを入力してください")
	message.SetString(lang, NoticeKeyFailed, "APIキーの設定に失敗しました: %s")
	message.SetString(lang, NoticeNotConfigured, "⚠️ まずはサイドバーからGemini APIキーを設定してください")
	message.SetString(lang, NoticeItemEmpty, "🚨 商品名を入力してください")
	message.SetString(lang, NoticeGenerateFailed, "エラーが発生しました: %s")
}
