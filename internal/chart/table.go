package chart

import (
	"html/template"
	"strings"
)

var tableTemplate = template.Must(template.New("summary").Parse(`<table class="summary">
<thead><tr><th>Name</th><th>Cooking Time (minutes)</th><th>Difficulty</th></tr></thead>
<tbody>
{{- range .Rows }}
<tr><td>{{ .Name }}</td><td>{{ .CookingTime }}</td><td>{{ .Difficulty }}</td></tr>
{{- end }}
</tbody>
</table>`))

// HTMLTable renders the summary as an HTML table string for the
// response context. Empty summaries render to an empty string.
func (s Summary) HTMLTable() (string, error) {
	if s.Empty() {
		return "", nil
	}
	var b strings.Builder
	if err := tableTemplate.Execute(&b, s); err != nil {
		return "", err
	}
	return b.String(), nil
}
