package i18n

// Message keys shared by the catalogs and the server.
const (
	PageTitle        = "page.title"
	PageHeading      = "page.heading"
	PageLead         = "page.lead"
	PageLeadDetail   = "page.lead_detail"
	SidebarTitle     = "sidebar.title"
	SidebarAPI       = "sidebar.api"
	SidebarKeyLabel  = "sidebar.key_label"
	SidebarKeySet    = "sidebar.key_set"
	SidebarInfo      = "sidebar.info"
	SidebarStatusOn  = "sidebar.status_on"
	SidebarStatusOff = "sidebar.status_off"
	ItemLabel        = "item.label"
	ItemPlaceholder  = "item.placeholder"
	ItemSubmit       = "item.submit"
	ResultHeading    = "result.heading"
	Generating       = "result.generating"

	NoticeKeySet         = "notice.key_set"
	NoticeKeyEmpty       = "notice.key_empty"
	NoticeKeyFailed      = "notice.key_failed"
	NoticeNotConfigured  = "notice.not_configured"
	NoticeItemEmpty      = "notice.item_empty"
	NoticeGenerateFailed = "notice.generate_failed"
)
