package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyStart             = "start"
	KeyCancel            = "cancel"
	KeyOpen              = "open"
	KeySettings          = "settings"
	KeyLanguage          = "language"
	KeyDownloadDirectory = "download_directory"
	KeyMaxResolution     = "max_resolution"
	KeyVideoFormat       = "video_format"
	KeyAudioFormat       = "audio_format"
	KeyCookieBrowser     = "cookie_browser"
	KeyDelaySeconds      = "delay_seconds"
	KeySave              = "save"
	KeyBrowse            = "browse"
	KeyEnterURLs         = "enter_urls"
	KeySettingsSaved     = "settings_saved"
	KeyBatchStarted      = "batch_started"
	KeyBatchFinished     = "batch_finished"
	KeyPleaseEnterURL    = "please_enter_url"
	KeyAlreadyRunning    = "already_running"
	KeyCancelling        = "cancelling"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyAutoReveal        = "auto_reveal_on_complete"
	KeyStatusPending     = "status_pending"
	KeyStatusRunning     = "status_running"
	KeyStatusSucceeded   = "status_succeeded"
	KeyStatusFailed      = "status_failed"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"zh": "中文",
		"ru": "Русский",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Universal Downloader",
		KeyStart:             "Start",
		KeyCancel:            "Cancel",
		KeyOpen:              "Open",
		KeySettings:          "Settings",
		KeyLanguage:          "Language",
		KeyDownloadDirectory: "Download Directory",
		KeyMaxResolution:     "Max Resolution",
		KeyVideoFormat:       "Video Format",
		KeyAudioFormat:       "Audio Format",
		KeyCookieBrowser:     "Import Cookies From",
		KeyDelaySeconds:      "Pause Between Downloads (seconds)",
		KeySave:              "Save",
		KeyBrowse:            "Browse",
		KeyEnterURLs:         "Enter URLs, one per line",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyBatchStarted:      "Batch started",
		KeyBatchFinished:     "Batch finished",
		KeyPleaseEnterURL:    "Please enter at least one URL",
		KeyAlreadyRunning:    "A batch is already running",
		KeyCancelling:        "Cancelling...",
		KeyErrorOpeningFile:  "Error opening file",
		KeyAutoReveal:        "Open folder when finished",
		KeyStatusPending:     "Pending",
		KeyStatusRunning:     "Downloading",
		KeyStatusSucceeded:   "Done",
		KeyStatusFailed:      "Failed",
	}

	// Chinese texts
	l.texts["zh"] = map[string]string{
		KeyAppTitle:          "通用下载器",
		KeyStart:             "开始下载",
		KeyCancel:            "取消",
		KeyOpen:              "打开",
		KeySettings:          "设置",
		KeyLanguage:          "语言",
		KeyDownloadDirectory: "下载目录",
		KeyMaxResolution:     "最高分辨率",
		KeyVideoFormat:       "视频格式",
		KeyAudioFormat:       "音频格式",
		KeyCookieBrowser:     "导入浏览器 Cookie",
		KeyDelaySeconds:      "下载间隔（秒）",
		KeySave:              "保存",
		KeyBrowse:            "浏览",
		KeyEnterURLs:         "输入链接，每行一个",
		KeySettingsSaved:     "设置已保存！",
		KeyBatchStarted:      "开始批量下载",
		KeyBatchFinished:     "批量下载完成",
		KeyPleaseEnterURL:    "请输入至少一个链接",
		KeyAlreadyRunning:    "已有下载任务进行中",
		KeyCancelling:        "正在取消...",
		KeyErrorOpeningFile:  "打开文件出错",
		KeyAutoReveal:        "完成后打开文件夹",
		KeyStatusPending:     "等待中",
		KeyStatusRunning:     "下载中",
		KeyStatusSucceeded:   "完成",
		KeyStatusFailed:      "失败",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Универсальный загрузчик",
		KeyStart:             "Начать",
		KeyCancel:            "Отмена",
		KeyOpen:              "Открыть",
		KeySettings:          "Настройки",
		KeyLanguage:          "Язык",
		KeyDownloadDirectory: "Папка загрузки",
		KeyMaxResolution:     "Макс. разрешение",
		KeyVideoFormat:       "Формат видео",
		KeyAudioFormat:       "Формат аудио",
		KeyCookieBrowser:     "Импорт cookie из браузера",
		KeyDelaySeconds:      "Пауза между загрузками (сек)",
		KeySave:              "Сохранить",
		KeyBrowse:            "Обзор",
		KeyEnterURLs:         "Введите ссылки, по одной на строку",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyBatchStarted:      "Загрузка начата",
		KeyBatchFinished:     "Загрузка завершена",
		KeyPleaseEnterURL:    "Введите хотя бы одну ссылку",
		KeyAlreadyRunning:    "Загрузка уже выполняется",
		KeyCancelling:        "Отмена...",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyAutoReveal:        "Открыть папку после завершения",
		KeyStatusPending:     "В очереди",
		KeyStatusRunning:     "Загрузка",
		KeyStatusSucceeded:   "Готово",
		KeyStatusFailed:      "Ошибка",
	}
}
