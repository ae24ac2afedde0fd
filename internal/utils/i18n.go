package utils

const DefaultLocale = "en"

var SupportedLocales = []string{"en", "zh"}

// Server-side messages only; screen copy lives with the presentation layer.
var translations = map[string]map[string]string{
	"en": {
		"health.ok":               "ok",
		"seed.ok":                 "Sample data loaded",
		"company.not_found":       "Company not found",
		"person.not_found":        "User not found",
		"question.not_found":      "Question not found",
		"survey.not_found":        "Survey template not found",
		"deployment.not_found":    "Deployment not found",
		"registration.ok":         "User registered successfully",
		"registration.bulk_stub":  "Bulk registration is not available",
		"request.invalid_payload": "Invalid request payload",
	},
	"zh": {
		"health.ok":               "好的",
		"seed.ok":                 "示例数据已加载",
		"company.not_found":       "未找到公司",
		"person.not_found":        "未找到用户",
		"question.not_found":      "未找到题目",
		"survey.not_found":        "未找到问卷模板",
		"deployment.not_found":    "未找到发放任务",
		"registration.ok":         "用户注册成功",
		"registration.bulk_stub":  "暂不支持批量注册",
		"request.invalid_payload": "请求数据无效",
	},
}

// T looks key up in locale, then in DefaultLocale. Unknown keys come back
// unchanged.
func T(locale, key string) string {
	if m, ok := translations[locale]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if v, ok := translations[DefaultLocale][key]; ok {
		return v
	}
	return key
}
