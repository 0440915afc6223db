// templates.go
package main

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/xuri/excelize/v2"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templateFuncs = template.FuncMap{
	"add": func(a, b int) int { return a + b },
	"formatSize": func(size int64) string {
		const unit = 1024
		if size < unit {
			return fmt.Sprintf("%d B", size)
		}
		div, exp := int64(unit), 0
		for n := size / unit; n >= unit; n /= unit {
			div *= unit
			exp++
		}
		return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
	},
	"signed": func(n int) string {
		if n > 0 {
			return fmt.Sprintf("+%d", n)
		}
		return fmt.Sprintf("%d", n)
	},
	"columnName": func(i int) string {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Sprint(i + 1)
		}
		return name
	},
	"label": func(s string) string {
		if s == "" {
			return "(blank)"
		}
		return s
	},
}

var pageTemplates = template.Must(template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html"))
