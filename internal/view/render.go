package view

import (
	"embed"
	"html/template"
	"net/url"
)

//go:embed templates/*.html
var templateFS embed.FS

// FuncMap 返回模板使用的辅助函数。
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"sub": func(a, b int) int {
			return a - b
		},
		"icon":       IconSVG,
		"pathEscape": url.PathEscape,
		"deref": func(value *string) string {
			if value == nil {
				return ""
			}
			return *value
		},
	}
}

// Load 解析内嵌的全部模板，模板名即文件名。
func Load() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(templateFS, "templates/*.html")
}
