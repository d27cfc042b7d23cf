package i18n

var AR = Messages{
	"unknown_member":       "فرد غير معروف %s",
	"child_needs_spouse":   "أضف زوجًا قبل إضافة طفل",
	"spouse_exists":        "لهذا الفرد زوج بالفعل",
	"parent_exists":        "لهذا الفرد والد بالفعل",
	"delete_proband":       "لا يمكن حذف الحالة الدالة",
	"proband_relationship": "لا يمكن تغيير صلة الحالة الدالة",
	"spouse_needs_link":    "يجب أن يبقى الزوج مرتبطًا بشريك",
	"unknown_annotation":   "ملاحظة غير معروفة",
	"unknown_kind":         "نوع قرابة غير معروف",
	"invalid_member":       "بيانات الفرد غير صالحة: %s",
	"no_header":            "لا يحتوي الملف على صف العناوين",
	"no_rows":              "لا يحتوي الملف على بيانات",
	"import_failed":        "فشل الاستيراد: %s",
	"imported":             "تم استيراد %d أفراد",
	"busy":                 "جارٍ الإنشاء بالفعل",
	"narrative_failed":     "تعذر إنشاء النص: %s",
	"missing_api_key":      "لم يتم إعداد مفتاح واجهة النموذج اللغوي",
	"legend_title":         "أنواع السرطان:",
	"analysis_title":       "تحليل شجرة العائلة",
	"note_title":           "ملاحظة طبية",
	"enter_text":           "أدخل النص:",
	"edit_text":            "تعديل النص:",
}
