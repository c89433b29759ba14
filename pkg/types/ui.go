package types

// UI is the presentation collaborator driven by the action layer. The core
// never talks to a terminal or window directly; adapters implement UI.
type UI interface {
	// RequestTemplateFilePath asks for the catalog location. ok is false
	// when the user cancelled.
	RequestTemplateFilePath() (path string, ok bool, err error)

	// PresentTemplateList shows the names of the loaded templates.
	PresentTemplateList(names []string)

	// PresentTemplateDetails shows the summary produced for one template.
	PresentTemplateDetails(details string)

	// SelectTemplate asks the user to pick one of names. ok is false when
	// the user cancelled.
	SelectTemplate(names []string) (name string, ok bool, err error)

	// RequestProjectName asks for the project root directory name.
	RequestProjectName() (string, error)

	ReportSuccess(message string)
	ReportWarning(message string)
	ReportError(message string)
}
