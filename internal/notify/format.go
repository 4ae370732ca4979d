package notify

import (
	"html/template"
	"strings"
	"time"

	model "nelo-tasks.com/nelo-tasks/internal/models"
)

var emailTemplate = template.Must(template.New("reminder").Parse(`<!DOCTYPE html>
<html>
<body>
  <div class="container">
    <div class="header">
      <h1>NELO Task Reminder</h1>
      <p>You have {{len .Tasks}} pending task{{if .Plural}}s{{end}}</p>
    </div>
    <div class="content">
      <table>
        <thead>
          <tr>
            <th>Task</th>
            <th>Priority</th>
            <th>Due Date</th>
          </tr>
        </thead>
        <tbody>
{{- range .Tasks}}
          <tr>
            <td><strong>{{.Title}}</strong></td>
            <td>{{.Priority}}</td>
            <td>{{.Due}}</td>
          </tr>
{{- end}}
        </tbody>
      </table>
    </div>
  </div>
</body>
</html>
`))

type emailRow struct {
	Title    string
	Priority string
	Due      string
}

// FormatHTML renders the reminder body for a set of pending tasks.
func FormatHTML(tasks []model.Task) (string, error) {
	rows := make([]emailRow, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, emailRow{
			Title:    t.Title,
			Priority: strings.ToUpper(string(t.Priority)),
			Due:      t.DueDate.Format(time.DateOnly),
		})
	}

	var b strings.Builder
	err := emailTemplate.Execute(&b, struct {
		Tasks  []emailRow
		Plural bool
	}{
		Tasks:  rows,
		Plural: len(rows) > 1,
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
