package cli

import (
	"strings"
	"text/template"
)

var templateFuncs = template.FuncMap{
	"join": strings.Join,
}

const contactTemplate = `{{.Name}} <{{.Email}}>
   ID:      {{.ID}}
{{- if .Phone }}
   Phone:   {{.Phone}}
{{- end}}
{{- if or .Role .Company }}
   Work:    {{.Role}}{{if and .Role .Company}} at {{end}}{{.Company}}
{{- end}}
{{- if .Tags }}
   Tags:    {{join .Tags ", "}}
{{- end}}
{{- if .Social.LinkedIn }}
   LinkedIn: {{.Social.LinkedIn}}
{{- end}}
{{- if .Social.GitHub }}
   GitHub:  {{.Social.GitHub}}
{{- end}}
{{- if .Social.Twitter }}
   Twitter: {{.Social.Twitter}}
{{- end}}
{{- if .Notes }}
   Notes:   {{.Notes}}
{{- end}}
{{- if .Image }}
   Image:   attached
{{- end}}
`

const profileTemplate = `
=== Profile ===

Name:   {{.Name}}
Email:  {{.Email}}
{{- if .Phone }}
Phone:  {{.Phone}}
{{- end}}
{{- if .JoinedDate }}
Joined: {{.JoinedDate}}
{{- end}}
{{- if .Avatar }}
Avatar: attached
{{- end}}
`

var (
	contactTmpl = template.Must(template.New("contact").Funcs(templateFuncs).Parse(contactTemplate))
	profileTmpl = template.Must(template.New("profile").Parse(profileTemplate))
)
