package email

// PreviewData holds sample values for every template, keyed by template
// name then by template variable.
var PreviewData = map[Template]map[string]string{
	TemplateWelcome: {
		"UserFirstName": "John",
		"Username":      "jdoe",
	},
}
