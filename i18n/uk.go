package i18n

var UK = Messages{
	"unknown_member":       "Невідома особа %s",
	"child_needs_spouse":   "Спочатку додайте подружжя, потім дитину",
	"spouse_exists":        "Ця особа вже має подружжя",
	"parent_exists":        "Ця особа вже має батька",
	"delete_proband":       "Пробанда не можна видалити",
	"proband_relationship": "Спорідненість пробанда не можна змінити",
	"spouse_needs_link":    "Подружжя має бути пов'язане з партнером",
	"unknown_annotation":   "Невідома примітка",
	"unknown_kind":         "Невідомий тип родича",
	"invalid_member":       "Некоректні дані особи: %s",
	"no_header":            "У файлі немає рядка заголовків",
	"no_rows":              "У файлі немає даних",
	"import_failed":        "Помилка імпорту: %s",
	"imported":             "Імпортовано осіб: %d",
	"busy":                 "Генерація вже триває",
	"narrative_failed":     "Не вдалося згенерувати текст: %s",
	"missing_api_key":      "Ключ API мовної моделі не налаштовано",
	"legend_title":         "Типи раку:",
	"analysis_title":       "Аналіз родоводу",
	"note_title":           "Медичний висновок",
	"enter_text":           "Введіть текст:",
	"edit_text":            "Редагувати текст:",
}
